package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

// ClientServices aggregates the business services of the terminal client.
type ClientServices struct {
	AuthService ClientAuthService
	TodoService ClientTodoService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, logger),
		TodoService: NewClientTodoService(localStore, serverAdapter, logger),
	}
}
