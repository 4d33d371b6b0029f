package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoRepository is the PostgreSQL-backed implementation of [TodoRepository].
//
// Every query it issues carries an owner_id predicate, so the repository can
// never observe (let alone return) a row that belongs to another user.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new todo row and returns it with the server-assigned ID.
func (r *todoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertTodoQuery(todo)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Create").Msg("error building insert query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	var created models.Todo
	if err := scanTodo(row, &created); err != nil {
		log.Err(err).Str("func", "*todoRepository.Create").Msg("error scanning created todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// GetAll returns every todo owned by ownerID, ordered by id.
func (r *todoRepository) GetAll(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectAllTodosQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetAll").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetAll").Int64("owner_id", ownerID).Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var todo models.Todo
		if err := scanTodo(rows, &todo); err != nil {
			log.Err(err).Str("func", "*todoRepository.GetAll").Msg("error scanning todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

// GetByID returns the todo with the given id owned by ownerID.
// A row owned by someone else yields [ErrTodoNotFound], same as absence.
func (r *todoRepository) GetByID(ctx context.Context, id, ownerID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectTodoByIDQuery(id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetByID").Msg("error building select query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var todo models.Todo
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanTodo(row, &todo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).Str("func", "*todoRepository.GetByID").Int64("id", id).Msg("error scanning todo row")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}

// Update replaces the mutable fields of the todo identified by update.ID and
// update.OwnerID. [ErrTodoNotFound] is returned when no row was affected.
func (r *todoRepository) Update(ctx context.Context, update models.TodoUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := updateTodoQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Update").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Update").Int64("id", update.ID).Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkAffected(result)
}

// Delete removes the todo identified by id and ownerID.
// [ErrTodoNotFound] is returned when no row was affected.
func (r *todoRepository) Delete(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteTodoQuery(id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Delete").Int64("id", id).Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkAffected(result)
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner, todo *models.Todo) error {
	return row.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.Priority, &todo.Complete, &todo.OwnerID)
}

// checkAffected maps a zero affected-row count to [ErrTodoNotFound].
func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
