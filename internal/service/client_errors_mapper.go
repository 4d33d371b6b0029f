// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error, so TUI code never matches on HTTP status sentinels.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if strings.Contains(err.Error(), app.MsgInvalidUsernamePassword) {
			return ErrWrongPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrTodoNotFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrUserAlreadyExists
	}

	return err
}

// isServerResponse reports whether err carries an HTTP status from the
// server, as opposed to a transport failure (connection refused, timeout).
// Only transport failures justify falling back to the local cache.
func isServerResponse(err error) bool {
	return errors.Is(err, adapter.ErrBadRequest) ||
		errors.Is(err, adapter.ErrUnauthorized) ||
		errors.Is(err, adapter.ErrNotFound) ||
		errors.Is(err, adapter.ErrConflict) ||
		errors.Is(err, adapter.ErrInternalServerError)
}
