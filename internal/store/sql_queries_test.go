// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_insertTodoQuery_SQLContainsParts(t *testing.T) {
	todo := models.Todo{
		Title:       "buy milk",
		Description: "two litres",
		Priority:    3,
		Complete:    false,
		OwnerID:     42,
	}

	query, args, err := insertTodoQuery(todo)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into todos")
	require.Contains(t, q, "returning")

	// placeholder format should be $1..$5 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$5")

	// RETURNING must carry every canonical column
	for _, col := range todoColumns {
		require.Contains(t, q, col, "query should contain column %q", col)
	}

	// args order follows the Columns() call: title, description, priority, complete, owner_id
	require.Len(t, args, 5)
	assert.Equal(t, todo.Title, args[0])
	assert.Equal(t, todo.Description, args[1])
	assert.Equal(t, todo.Priority, args[2])
	assert.Equal(t, todo.Complete, args[3])
	assert.Equal(t, todo.OwnerID, args[4])
}

func Test_selectAllTodosQuery_SQLContainsParts(t *testing.T) {
	query, args, err := selectAllTodosQuery(42)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from todos")
	require.Contains(t, q, "where")
	require.Contains(t, q, "owner_id")
	require.Contains(t, q, "order by id")

	require.Contains(t, query, "$1")

	require.Len(t, args, 1)
	assert.Equal(t, int64(42), args[0])
}

func Test_selectTodoByIDQuery_SQLContainsParts(t *testing.T) {
	query, args, err := selectTodoByIDQuery(7, 42)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "from todos")
	require.Contains(t, q, "where")

	// both the id and the owner filter must be present
	whereIdx := strings.Index(q, "where")
	require.NotEqual(t, -1, whereIdx)
	wherePart := q[whereIdx:]
	require.Contains(t, wherePart, "id")
	require.Contains(t, wherePart, "owner_id")

	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")

	// sq.Eq sorts map keys, so id comes before owner_id
	require.Len(t, args, 2)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, int64(42), args[1])
}

func Test_updateTodoQuery_SQLContainsParts(t *testing.T) {
	update := models.TodoUpdate{
		ID:          7,
		OwnerID:     42,
		Title:       "buy milk",
		Description: "three litres",
		Priority:    2,
		Complete:    true,
	}

	query, args, err := updateTodoQuery(update)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update todos")
	require.Contains(t, q, "set")
	require.Contains(t, q, "title = $1")
	require.Contains(t, q, "description = $2")
	require.Contains(t, q, "priority = $3")
	require.Contains(t, q, "complete = $4")

	// WHERE filters on id and owner_id with sequential placeholders
	whereIdx := strings.Index(q, "where")
	require.NotEqual(t, -1, whereIdx)
	wherePart := q[whereIdx:]
	require.Contains(t, wherePart, "id = $5")
	require.Contains(t, wherePart, "owner_id = $6")

	// args order: SET values first, then the WHERE filters sorted by key
	require.Len(t, args, 6)
	assert.Equal(t, update.Title, args[0])
	assert.Equal(t, update.Description, args[1])
	assert.Equal(t, update.Priority, args[2])
	assert.Equal(t, update.Complete, args[3])
	assert.Equal(t, update.ID, args[4])
	assert.Equal(t, update.OwnerID, args[5])
}

func Test_deleteTodoQuery_SQLContainsParts(t *testing.T) {
	query, args, err := deleteTodoQuery(7, 42)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from todos")
	require.Contains(t, q, "where")
	require.Contains(t, q, "owner_id")

	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")

	require.Len(t, args, 2)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, int64(42), args[1])
}

func Test_todoQueries_Idempotent(t *testing.T) {
	q1, a1, err1 := selectAllTodosQuery(99)
	require.NoError(t, err1)

	q2, a2, err2 := selectAllTodosQuery(99)
	require.NoError(t, err2)

	require.Equal(t, q1, q2)
	require.Equal(t, a1, a2)
}

func Test_insertTodoQuery_ReturningClauseUsesCanonicalOrder(t *testing.T) {
	query, _, err := insertTodoQuery(models.Todo{Title: "t", Description: "d", Priority: 1, OwnerID: 42})
	require.NoError(t, err)

	assert.Contains(t, query, "RETURNING "+strings.Join(todoColumns, ", "))
	assert.NotContains(t, query, "*")
}
