package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type localTodoRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalTodoRepository(db *DB, logger *logger.Logger) LocalTodoRepository {
	return &localTodoRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceAll atomically swaps the cached todo set of ownerID for the given
// snapshot. Used after a successful server list to resynchronise the cache.
func (l *localTodoRepository) ReplaceAll(ctx context.Context, ownerID int64, todos []models.Todo) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localTodoRepository.ReplaceAll").
			Int64("owner_id", ownerID).
			Msg("failed to begin cache transaction")
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllCachedTodos, ownerID); err != nil {
		log.Err(err).
			Str("func", "localTodoRepository.ReplaceAll").
			Int64("owner_id", ownerID).
			Msg("failed to clear cached todos")
		return fmt.Errorf("failed to clear cached todos: %w", err)
	}

	for _, todo := range todos {
		_, err = tx.ExecContext(ctx, upsertCachedTodo,
			todo.ID,
			todo.Title,
			todo.Description,
			todo.Priority,
			todo.Complete,
			ownerID,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localTodoRepository.ReplaceAll").
				Int64("owner_id", ownerID).
				Int64("todo_id", todo.ID).
				Msg("failed to cache todo")
			return fmt.Errorf("failed to cache todo (id=%d): %w", todo.ID, err)
		}
	}

	return tx.Commit()
}

func (l *localTodoRepository) GetAllTodos(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllCachedTodos, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "localTodoRepository.GetAllTodos").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for cached todos")
		return nil, fmt.Errorf("failed to query cached todos: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var todo models.Todo
		scanErr := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.Priority,
			&todo.Complete,
			&todo.OwnerID,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localTodoRepository.GetAllTodos").
				Int64("owner_id", ownerID).
				Msg("failed to scan cached todo row")
			return nil, fmt.Errorf("failed to scan cached todo row: %w", scanErr)
		}

		todos = append(todos, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localTodoRepository.GetAllTodos").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached todo rows: %w", rowsErr)
	}

	return todos, nil
}

func (l *localTodoRepository) UpsertTodo(ctx context.Context, todo models.Todo) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, upsertCachedTodo,
		todo.ID,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.Complete,
		todo.OwnerID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localTodoRepository.UpsertTodo").
			Int64("owner_id", todo.OwnerID).
			Int64("todo_id", todo.ID).
			Msg("failed to execute upsert for cached todo")
		return fmt.Errorf("failed to upsert cached todo (id=%d): %w", todo.ID, err)
	}

	return nil
}

func (l *localTodoRepository) DeleteTodo(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, deleteCachedTodo, id, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "localTodoRepository.DeleteTodo").
			Int64("owner_id", ownerID).
			Int64("todo_id", id).
			Msg("failed to execute delete for cached todo")
		return fmt.Errorf("failed to delete cached todo (id=%d): %w", id, err)
	}

	return nil
}
