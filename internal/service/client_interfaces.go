package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for user registration
// and authentication against the remote server.
type ClientAuthService interface {
	// Register creates a new account on the server for the given user.
	// Registration does not issue a token; call Login afterwards.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges the username/password pair for a bearer token, stores
	// it in the transport adapter, and returns the user id extracted from
	// the token claims.
	Login(ctx context.Context, username, password string) (int64, error)
}

// ClientTodoService defines the client-side contract for managing todos.
// All operations go to the server first; the local SQLite cache mirrors the
// server state so listing still works when the server is unreachable.
type ClientTodoService interface {
	// SetOwner records the authenticated user's id. It must be called after
	// a successful login, before any todo operation, so that cached rows are
	// labelled with their owner.
	SetOwner(ownerID int64)

	// List fetches every todo from the server and refreshes the local cache.
	// When the server is unreachable the cached todos are returned instead.
	List(ctx context.Context) ([]models.Todo, error)

	// Get fetches a single todo by id from the server.
	Get(ctx context.Context, id int64) (models.Todo, error)

	// Create stores a new todo on the server, mirrors it into the cache, and
	// returns the created record with the server-assigned id and the
	// possibly enriched description.
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)

	// Update replaces the mutable fields of the todo identified by update.ID
	// on the server and in the cache.
	Update(ctx context.Context, update models.TodoUpdate) error

	// Delete removes the todo from the server and the cache.
	Delete(ctx context.Context, id int64) error
}
