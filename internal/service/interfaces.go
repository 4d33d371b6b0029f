package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// AuthService handles account registration, credential verification and
// the JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TodoService is the owner-scoped business layer over the todo repository.
// The ownerID always comes from the authenticated token, never from the
// request body.
type TodoService interface {
	GetAll(ctx context.Context, ownerID int64) ([]models.Todo, error)
	GetByID(ctx context.Context, id, ownerID int64) (models.Todo, error)
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)
	Update(ctx context.Context, update models.TodoUpdate) error
	Delete(ctx context.Context, id, ownerID int64) error
}
