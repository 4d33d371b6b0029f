package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	createUser = `INSERT INTO users (email, username, first_name, last_name, hashed_password, is_active, role, phone_number)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, email, username, first_name, last_name, hashed_password, is_active, role, phone_number, created_at;`

	findUserByUsername = `SELECT id, email, username, first_name, last_name, hashed_password, is_active, role, phone_number, created_at
    FROM users
    WHERE username = $1;`
)

// todoColumns is the canonical column order used by every todo SELECT and
// RETURNING clause; scanTodo must stay in sync with it.
var todoColumns = []string{"id", "title", "description", "priority", "complete", "owner_id"}

// psql builds all dynamic todo queries with PostgreSQL ($1, $2, ...)
// placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func insertTodoQuery(todo models.Todo) (string, []any, error) {
	return psql.Insert(todo.TableName()).
		Columns("title", "description", "priority", "complete", "owner_id").
		Values(todo.Title, todo.Description, todo.Priority, todo.Complete, todo.OwnerID).
		Suffix("RETURNING " + strings.Join(todoColumns, ", ")).
		ToSql()
}

func selectAllTodosQuery(ownerID int64) (string, []any, error) {
	return psql.Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
}

func selectTodoByIDQuery(id, ownerID int64) (string, []any, error) {
	return psql.Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

func updateTodoQuery(update models.TodoUpdate) (string, []any, error) {
	return psql.Update(models.Todo{}.TableName()).
		Set("title", update.Title).
		Set("description", update.Description).
		Set("priority", update.Priority).
		Set("complete", update.Complete).
		Where(sq.Eq{"id": update.ID, "owner_id": update.OwnerID}).
		ToSql()
}

func deleteTodoQuery(id, ownerID int64) (string, []any, error) {
	return psql.Delete(models.Todo{}.TableName()).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}
