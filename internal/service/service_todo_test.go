// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/enrich"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.TodoRepository
// ─────────────────────────────────────────────

type mockTodoRepository struct {
	createFn  func(ctx context.Context, todo models.Todo) (models.Todo, error)
	getAllFn  func(ctx context.Context, ownerID int64) ([]models.Todo, error)
	getByIDFn func(ctx context.Context, id, ownerID int64) (models.Todo, error)
	updateFn  func(ctx context.Context, update models.TodoUpdate) error
	deleteFn  func(ctx context.Context, id, ownerID int64) error
}

func (m *mockTodoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	if m.createFn != nil {
		return m.createFn(ctx, todo)
	}
	return todo, nil
}

func (m *mockTodoRepository) GetAll(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTodoRepository) GetByID(ctx context.Context, id, ownerID int64) (models.Todo, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id, ownerID)
	}
	return models.Todo{}, nil
}

func (m *mockTodoRepository) Update(ctx context.Context, update models.TodoUpdate) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return nil
}

func (m *mockTodoRepository) Delete(ctx context.Context, id, ownerID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, ownerID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: enrich.ModelClient
// ─────────────────────────────────────────────

type mockModelClient struct {
	generateFn func(ctx context.Context, model, prompt string) (string, error)
}

func (m *mockModelClient) DiscoverModel(ctx context.Context) (string, error) {
	return enrich.DefaultModel, nil
}

func (m *mockModelClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, model, prompt)
	}
	return "", errors.New("not configured")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var errRepository = errors.New("repository error")

func newTestTodoService(repo *mockTodoRepository) TodoService {
	disabled := enrich.NewDescriptionEnricherWithClient(nil, logger.Nop())
	return NewTodoService(repo, disabled, logger.Nop())
}

func newTodoInput() models.Todo {
	return models.Todo{
		Title:       "buy milk",
		Description: "two litres of whole milk",
		Priority:    3,
		OwnerID:     7,
	}
}

// ─────────────────────────────────────────────
// GetAll / GetByID
// ─────────────────────────────────────────────

func TestTodoService_GetAll_Success(t *testing.T) {
	repo := &mockTodoRepository{
		getAllFn: func(ctx context.Context, ownerID int64) ([]models.Todo, error) {
			assert.Equal(t, int64(7), ownerID)
			return []models.Todo{{ID: 1, OwnerID: 7}}, nil
		},
	}
	svc := newTestTodoService(repo)

	todos, err := svc.GetAll(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, todos, 1)
}

func TestTodoService_GetAll_RepositoryError(t *testing.T) {
	repo := &mockTodoRepository{
		getAllFn: func(ctx context.Context, ownerID int64) ([]models.Todo, error) {
			return nil, errRepository
		},
	}
	svc := newTestTodoService(repo)

	_, err := svc.GetAll(context.Background(), 7)
	require.ErrorIs(t, err, errRepository)
}

func TestTodoService_GetByID_NotFoundPassthrough(t *testing.T) {
	repo := &mockTodoRepository{
		getByIDFn: func(ctx context.Context, id, ownerID int64) (models.Todo, error) {
			return models.Todo{}, store.ErrTodoNotFound
		},
	}
	svc := newTestTodoService(repo)

	_, err := svc.GetByID(context.Background(), 42, 7)
	require.ErrorIs(t, err, store.ErrTodoNotFound)
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestTodoService_Create_Success(t *testing.T) {
	repo := &mockTodoRepository{
		createFn: func(ctx context.Context, todo models.Todo) (models.Todo, error) {
			todo.ID = 42
			return todo, nil
		},
	}
	svc := newTestTodoService(repo)

	created, err := svc.Create(context.Background(), newTodoInput())
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "two litres of whole milk", created.Description)
}

func TestTodoService_Create_ValidationError(t *testing.T) {
	svc := newTestTodoService(&mockTodoRepository{})

	todo := newTodoInput()
	todo.Priority = 9

	_, err := svc.Create(context.Background(), todo)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTodoService_Create_EnrichedDescriptionPersisted(t *testing.T) {
	var persisted models.Todo
	repo := &mockTodoRepository{
		createFn: func(ctx context.Context, todo models.Todo) (models.Todo, error) {
			persisted = todo
			return todo, nil
		},
	}

	client := &mockModelClient{
		generateFn: func(ctx context.Context, model, prompt string) (string, error) {
			return "A detailed plan for buying milk.", nil
		},
	}
	enricher := enrich.NewDescriptionEnricherWithClient(client, logger.Nop())
	svc := NewTodoService(repo, enricher, logger.Nop())

	_, err := svc.Create(context.Background(), newTodoInput())
	require.NoError(t, err)
	assert.Equal(t, "A detailed plan for buying milk.", persisted.Description)
}

func TestTodoService_Create_LongEnrichedDescriptionPersisted(t *testing.T) {
	// Модель спокойно выдаёт тексты длиннее лимита на пользовательский ввод.
	generated := strings.TrimSpace(strings.Repeat("Step one: check the fridge before leaving the house. ", 50))
	require.Greater(t, len(generated), 1000)

	var persisted models.Todo
	repo := &mockTodoRepository{
		createFn: func(ctx context.Context, todo models.Todo) (models.Todo, error) {
			persisted = todo
			return todo, nil
		},
	}

	client := &mockModelClient{
		generateFn: func(ctx context.Context, model, prompt string) (string, error) {
			return generated, nil
		},
	}
	enricher := enrich.NewDescriptionEnricherWithClient(client, logger.Nop())
	svc := NewTodoService(repo, enricher, logger.Nop())

	_, err := svc.Create(context.Background(), newTodoInput())
	require.NoError(t, err, "a long enriched description must not fail the create")
	assert.Equal(t, generated, persisted.Description, "enriched text must be stored untruncated")
}

func TestTodoService_Create_EnrichmentFailureKeepsOriginal(t *testing.T) {
	var persisted models.Todo
	repo := &mockTodoRepository{
		createFn: func(ctx context.Context, todo models.Todo) (models.Todo, error) {
			persisted = todo
			return todo, nil
		},
	}

	client := &mockModelClient{
		generateFn: func(ctx context.Context, model, prompt string) (string, error) {
			return "", enrich.ErrRequestFailed
		},
	}
	enricher := enrich.NewDescriptionEnricherWithClient(client, logger.Nop())
	svc := NewTodoService(repo, enricher, logger.Nop())

	_, err := svc.Create(context.Background(), newTodoInput())
	require.NoError(t, err, "enrichment failure must never fail the create")
	assert.Equal(t, "two litres of whole milk", persisted.Description)
}

func TestTodoService_Create_RepositoryError(t *testing.T) {
	repo := &mockTodoRepository{
		createFn: func(ctx context.Context, todo models.Todo) (models.Todo, error) {
			return models.Todo{}, errRepository
		},
	}
	svc := newTestTodoService(repo)

	_, err := svc.Create(context.Background(), newTodoInput())
	require.ErrorIs(t, err, errRepository)
}

// ─────────────────────────────────────────────
// Update / Delete
// ─────────────────────────────────────────────

func TestTodoService_Update_Success(t *testing.T) {
	var applied models.TodoUpdate
	repo := &mockTodoRepository{
		updateFn: func(ctx context.Context, update models.TodoUpdate) error {
			applied = update
			return nil
		},
	}
	svc := newTestTodoService(repo)

	update := models.TodoUpdate{
		ID:          42,
		OwnerID:     7,
		Title:       "buy milk",
		Description: "three litres this time",
		Priority:    2,
		Complete:    true,
	}

	require.NoError(t, svc.Update(context.Background(), update))
	assert.Equal(t, update, applied)
}

func TestTodoService_Update_ValidationError(t *testing.T) {
	svc := newTestTodoService(&mockTodoRepository{})

	err := svc.Update(context.Background(), models.TodoUpdate{ID: 42, OwnerID: 7, Title: "x", Description: "desc ok", Priority: 3})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTodoService_Update_NotFoundPassthrough(t *testing.T) {
	repo := &mockTodoRepository{
		updateFn: func(ctx context.Context, update models.TodoUpdate) error {
			return store.ErrTodoNotFound
		},
	}
	svc := newTestTodoService(repo)

	err := svc.Update(context.Background(), models.TodoUpdate{
		ID: 42, OwnerID: 7, Title: "buy milk", Description: "valid description", Priority: 1,
	})
	require.ErrorIs(t, err, store.ErrTodoNotFound)
}

func TestTodoService_Delete_Success(t *testing.T) {
	repo := &mockTodoRepository{
		deleteFn: func(ctx context.Context, id, ownerID int64) error {
			assert.Equal(t, int64(42), id)
			assert.Equal(t, int64(7), ownerID)
			return nil
		},
	}
	svc := newTestTodoService(repo)

	require.NoError(t, svc.Delete(context.Background(), 42, 7))
}

func TestTodoService_Delete_NotFoundPassthrough(t *testing.T) {
	repo := &mockTodoRepository{
		deleteFn: func(ctx context.Context, id, ownerID int64) error {
			return store.ErrTodoNotFound
		},
	}
	svc := newTestTodoService(repo)

	err := svc.Delete(context.Background(), 42, 7)
	require.ErrorIs(t, err, store.ErrTodoNotFound)
}
