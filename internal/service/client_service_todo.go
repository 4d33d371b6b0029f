package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type clientTodoService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter

	ownerID atomic.Int64

	logger *logger.Logger
}

func NewClientTodoService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientTodoService {
	return &clientTodoService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (s *clientTodoService) SetOwner(ownerID int64) {
	s.ownerID.Store(ownerID)
}

// List implements [ClientTodoService]. A successful server response replaces
// the cache wholesale; a transport failure falls back to the cached todos so
// the list screen keeps working offline.
func (s *clientTodoService) List(ctx context.Context) ([]models.Todo, error) {
	ownerID := s.ownerID.Load()

	todos, err := s.adapter.ListTodos(ctx)
	if err != nil {
		if isServerResponse(err) {
			return nil, mapAdapterError(err)
		}

		s.logger.Err(err).
			Str("func", "clientTodoService.List").
			Msg("server unreachable, serving todos from local cache")

		cached, cacheErr := s.localStore.TodoRepository.GetAllTodos(ctx, ownerID)
		if cacheErr != nil {
			return nil, fmt.Errorf("list todos: %w", err)
		}
		return cached, nil
	}

	if err := s.localStore.TodoRepository.ReplaceAll(ctx, ownerID, todos); err != nil {
		// Cache refresh failure is not fatal, the server copy is authoritative.
		s.logger.Err(err).
			Str("func", "clientTodoService.List").
			Msg("error refreshing local todo cache")
	}

	return todos, nil
}

func (s *clientTodoService) Get(ctx context.Context, id int64) (models.Todo, error) {
	todo, err := s.adapter.GetTodo(ctx, id)
	if err != nil {
		return models.Todo{}, mapAdapterError(err)
	}

	return todo, nil
}

func (s *clientTodoService) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	created, err := s.adapter.CreateTodo(ctx, todo)
	if err != nil {
		return models.Todo{}, mapAdapterError(err)
	}

	created.OwnerID = s.ownerID.Load()
	if err := s.localStore.TodoRepository.UpsertTodo(ctx, created); err != nil {
		s.logger.Err(err).
			Str("func", "clientTodoService.Create").
			Int64("id", created.ID).
			Msg("error caching created todo")
	}

	return created, nil
}

func (s *clientTodoService) Update(ctx context.Context, update models.TodoUpdate) error {
	if err := s.adapter.UpdateTodo(ctx, update); err != nil {
		return mapAdapterError(err)
	}

	cached := models.Todo{
		ID:          update.ID,
		Title:       update.Title,
		Description: update.Description,
		Priority:    update.Priority,
		Complete:    update.Complete,
		OwnerID:     s.ownerID.Load(),
	}
	if err := s.localStore.TodoRepository.UpsertTodo(ctx, cached); err != nil {
		s.logger.Err(err).
			Str("func", "clientTodoService.Update").
			Int64("id", update.ID).
			Msg("error caching updated todo")
	}

	return nil
}

func (s *clientTodoService) Delete(ctx context.Context, id int64) error {
	if err := s.adapter.DeleteTodo(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	if err := s.localStore.TodoRepository.DeleteTodo(ctx, id, s.ownerID.Load()); err != nil {
		s.logger.Err(err).
			Str("func", "clientTodoService.Delete").
			Int64("id", id).
			Msg("error removing todo from local cache")
	}

	return nil
}
