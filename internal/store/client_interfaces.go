package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalTodoRepository is the low-level local todo cache repository.
// The cache mirrors the server state for the logged-in user so the client
// can still list todos when the server is unreachable.
type LocalTodoRepository interface {
	ReplaceAll(ctx context.Context, ownerID int64, todos []models.Todo) error
	GetAllTodos(ctx context.Context, ownerID int64) ([]models.Todo, error)
	UpsertTodo(ctx context.Context, todo models.Todo) error
	DeleteTodo(ctx context.Context, id, ownerID int64) error
}
