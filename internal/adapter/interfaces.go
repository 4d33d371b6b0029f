// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-todo-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-todo-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server with the provided
	// user credentials and returns the created account record. Registration
	// does not issue a token; call Login afterwards.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges the username/password pair for a bearer token at the
	// token endpoint. On success it stores the token via SetToken and
	// returns its compact form. Returns [ErrUnauthorized] (wrapped) when the
	// credentials are rejected.
	Login(ctx context.Context, username, password string) (string, error)

	// ListTodos fetches every todo owned by the authenticated user.
	ListTodos(ctx context.Context) ([]models.Todo, error)

	// GetTodo fetches a single todo by its server-side id. Returns
	// [ErrNotFound] (wrapped) when the id does not exist for this user.
	GetTodo(ctx context.Context, id int64) (models.Todo, error)

	// CreateTodo stores a new todo on the server and returns the created
	// record, including the server-assigned id and the possibly enriched
	// description.
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)

	// UpdateTodo replaces the mutable fields of the todo identified by
	// update.ID. Returns [ErrNotFound] (wrapped) when the id does not exist
	// for this user.
	UpdateTodo(ctx context.Context, update models.TodoUpdate) error

	// DeleteTodo removes the todo identified by id. Returns [ErrNotFound]
	// (wrapped) when the id does not exist for this user.
	DeleteTodo(ctx context.Context, id int64) error
}
