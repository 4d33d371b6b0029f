package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/enrich"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

type Services struct {
	AuthService AuthService
	TodoService TodoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	enricher := enrich.NewDescriptionEnricher(cfg.App, logger)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		TodoService: NewTodoService(storages.TodoRepository, enricher, logger),
	}
}
