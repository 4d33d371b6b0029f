// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// bearer token from an incoming request. Callers can match against them with
// [errors.Is].
var (
	// ErrNoTokenProvided is returned by the auth middleware when the request
	// carries neither an "Authorization" header nor an access-token cookie.
	ErrNoTokenProvided = errors.New("no token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not follow the "Bearer <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
