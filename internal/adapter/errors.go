package adapter

import "errors"

// Sentinel transport errors returned by ServerAdapter implementations.
// mapHTTPError wraps them with the response body, so match with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found on server")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
