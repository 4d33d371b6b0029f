// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validTodo() models.Todo {
	return models.Todo{
		Title:       "buy milk",
		Description: "two litres of whole milk",
		Priority:    3,
		OwnerID:     1,
	}
}

func validTodoUpdate() models.TodoUpdate {
	return models.TodoUpdate{
		ID:          42,
		OwnerID:     1,
		Title:       "buy milk",
		Description: "three litres this time",
		Priority:    2,
		Complete:    true,
	}
}

// ---------------------------------------------------------------------------
// TestNewTodoValidator
// ---------------------------------------------------------------------------

func TestNewTodoValidator(t *testing.T) {
	v := NewTodoValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestTodoValidate_Dispatch
// ---------------------------------------------------------------------------

func TestTodoValidate_Dispatch(t *testing.T) {
	v := NewTodoValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("Todo value", func(t *testing.T) {
		todo := validTodo()
		require.NoError(t, v.Validate(ctx, todo))
	})

	t.Run("Todo pointer", func(t *testing.T) {
		todo := validTodo()
		require.NoError(t, v.Validate(ctx, &todo))
	})

	t.Run("TodoUpdate value", func(t *testing.T) {
		update := validTodoUpdate()
		require.NoError(t, v.Validate(ctx, update))
	})

	t.Run("TodoUpdate pointer", func(t *testing.T) {
		update := validTodoUpdate()
		require.NoError(t, v.Validate(ctx, &update))
	})
}

// ---------------------------------------------------------------------------
// TestValidateTodo
// ---------------------------------------------------------------------------

func TestValidateTodo(t *testing.T) {
	v := NewTodoValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(todo *models.Todo)
		wantErr error
	}{
		{
			name:    "valid todo",
			mutate:  func(todo *models.Todo) {},
			wantErr: nil,
		},
		{
			name:    "title too short",
			mutate:  func(todo *models.Todo) { todo.Title = "ab" },
			wantErr: ErrTitleTooShort,
		},
		{
			name:    "title of padded whitespace",
			mutate:  func(todo *models.Todo) { todo.Title = "  a   " },
			wantErr: ErrTitleTooShort,
		},
		{
			name:    "title exactly at minimum",
			mutate:  func(todo *models.Todo) { todo.Title = "abc" },
			wantErr: nil,
		},
		{
			name:    "multibyte title counts runes",
			mutate:  func(todo *models.Todo) { todo.Title = "дом" },
			wantErr: nil,
		},
		{
			name:    "description too short",
			mutate:  func(todo *models.Todo) { todo.Description = "ab" },
			wantErr: ErrDescriptionLength,
		},
		{
			name:    "description too long",
			mutate:  func(todo *models.Todo) { todo.Description = strings.Repeat("a", 1001) },
			wantErr: ErrDescriptionLength,
		},
		{
			name:    "description exactly at maximum",
			mutate:  func(todo *models.Todo) { todo.Description = strings.Repeat("a", 1000) },
			wantErr: nil,
		},
		{
			name:    "priority zero",
			mutate:  func(todo *models.Todo) { todo.Priority = 0 },
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "priority six",
			mutate:  func(todo *models.Todo) { todo.Priority = 6 },
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "priority at both bounds",
			mutate:  func(todo *models.Todo) { todo.Priority = 1 },
			wantErr: nil,
		},
		{
			name:    "missing owner",
			mutate:  func(todo *models.Todo) { todo.OwnerID = 0 },
			wantErr: ErrInvalidOwnerID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := validTodo()
			tt.mutate(&todo)

			err := v.Validate(ctx, todo)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateTodo_FieldScoping(t *testing.T) {
	v := NewTodoValidator()
	ctx := context.Background()

	todo := validTodo()
	todo.Title = "x" // invalid, but not in the requested field set

	require.NoError(t, v.Validate(ctx, todo, FieldPriority, FieldDescription))
	require.ErrorIs(t, v.Validate(ctx, todo, FieldTitle), ErrTitleTooShort)
	require.ErrorIs(t, v.Validate(ctx, todo, "no_such_field"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidateTodoUpdate
// ---------------------------------------------------------------------------

func TestValidateTodoUpdate(t *testing.T) {
	v := NewTodoValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(update *models.TodoUpdate)
		wantErr error
	}{
		{
			name:    "valid update",
			mutate:  func(update *models.TodoUpdate) {},
			wantErr: nil,
		},
		{
			name:    "zero id",
			mutate:  func(update *models.TodoUpdate) { update.ID = 0 },
			wantErr: ErrInvalidTodoID,
		},
		{
			name:    "negative id",
			mutate:  func(update *models.TodoUpdate) { update.ID = -5 },
			wantErr: ErrInvalidTodoID,
		},
		{
			name:    "missing owner",
			mutate:  func(update *models.TodoUpdate) { update.OwnerID = 0 },
			wantErr: ErrInvalidOwnerID,
		},
		{
			name:    "short title",
			mutate:  func(update *models.TodoUpdate) { update.Title = "no" },
			wantErr: ErrTitleTooShort,
		},
		{
			name:    "priority out of range",
			mutate:  func(update *models.TodoUpdate) { update.Priority = 7 },
			wantErr: ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := validTodoUpdate()
			tt.mutate(&update)

			err := v.Validate(ctx, update)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
