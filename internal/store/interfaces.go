package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrUserAlreadyExists when the username or
	// email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up an account by its unique username.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// TodoRepository is the persistence contract for todo items. Every method
// is owner-scoped: rows that belong to a different user are treated exactly
// like rows that do not exist.
type TodoRepository interface {
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)
	GetAll(ctx context.Context, ownerID int64) ([]models.Todo, error)
	GetByID(ctx context.Context, id, ownerID int64) (models.Todo, error)
	Update(ctx context.Context, update models.TodoUpdate) error
	Delete(ctx context.Context, id, ownerID int64) error
}
