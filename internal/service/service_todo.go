package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/enrich"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoService is the concrete implementation of TodoService. Every call is
// scoped to the owner passed in from the authenticated token; the service
// never widens that scope.
type todoService struct {
	todoRepository store.TodoRepository
	todoValidator  validators.Validator
	enricher       *enrich.DescriptionEnricher

	logger *logger.Logger
}

// NewTodoService constructs a TodoService backed by the given repository.
// The enricher may be disabled (no API key); creation then stores the
// description as typed.
func NewTodoService(todoRepository store.TodoRepository, enricher *enrich.DescriptionEnricher, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		todoValidator:  validators.NewTodoValidator(),
		enricher:       enricher,
		logger:         logger,
	}
}

// GetAll returns every todo owned by ownerID.
func (t *todoService) GetAll(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	todos, err := t.todoRepository.GetAll(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("listing todos failed")
		return nil, fmt.Errorf("listing todos failed: %w", err)
	}

	return todos, nil
}

// GetByID returns the todo with the given id if ownerID owns it;
// store.ErrTodoNotFound otherwise.
func (t *todoService) GetByID(ctx context.Context, id, ownerID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	todo, err := t.todoRepository.GetByID(ctx, id, ownerID)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("todo lookup failed")
		return models.Todo{}, fmt.Errorf("todo lookup failed: %w", err)
	}

	return todo, nil
}

// Create validates the todo, runs the description through the enricher and
// persists whatever text results. Enrichment is best-effort and can never
// fail the create; the validated bounds apply to the user's input, not to
// the enriched output.
func (t *todoService) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := t.todoValidator.Validate(ctx, todo); err != nil {
		log.Err(err).Int64("owner_id", todo.OwnerID).Msg("invalid todo provided")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	todo.Description = t.enricher.Enrich(ctx, todo.Description)

	created, err := t.todoRepository.Create(ctx, todo)
	if err != nil {
		log.Err(err).Int64("owner_id", todo.OwnerID).Msg("todo creation failed")
		return models.Todo{}, fmt.Errorf("todo creation failed: %w", err)
	}

	return created, nil
}

// Update validates and applies a full replacement of the todo's mutable
// fields. Returns store.ErrTodoNotFound when ownerID does not own the row.
func (t *todoService) Update(ctx context.Context, update models.TodoUpdate) error {
	log := logger.FromContext(ctx)

	if err := t.todoValidator.Validate(ctx, update); err != nil {
		log.Err(err).Int64("id", update.ID).Int64("owner_id", update.OwnerID).Msg("invalid todo update provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := t.todoRepository.Update(ctx, update); err != nil {
		log.Err(err).Int64("id", update.ID).Int64("owner_id", update.OwnerID).Msg("todo update failed")
		return fmt.Errorf("todo update failed: %w", err)
	}

	return nil
}

// Delete removes the todo if ownerID owns it; store.ErrTodoNotFound
// otherwise.
func (t *todoService) Delete(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := t.todoRepository.Delete(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("todo deletion failed")
		return fmt.Errorf("todo deletion failed: %w", err)
	}

	return nil
}
