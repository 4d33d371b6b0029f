package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	FieldTodoID      = "id"
	FieldOwnerID     = "owner_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPriority    = "priority"
)

const (
	minTitleLength       = 3
	minDescriptionLength = 3
	maxDescriptionLength = 1000
	minPriority          = 1
	maxPriority          = 5
)

// TodoValidator implements the Validator interface for todo items and
// their update descriptors.
type TodoValidator struct {
}

// NewTodoValidator constructs a new TodoValidator
// and returns it as the Validator interface.
func NewTodoValidator() Validator {
	return &TodoValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Todo / *models.Todo
//   - models.TodoUpdate / *models.TodoUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Todo:
		return v.validateTodo(ctx, value, fields...)
	case *models.Todo:
		return v.validateTodo(ctx, *value, fields...)

	case models.TodoUpdate:
		return v.validateTodoUpdate(ctx, value, fields...)
	case *models.TodoUpdate:
		return v.validateTodoUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateTodo validates a todo being created.
//
// Default validated fields (when none specified):
// OwnerID, Title, Description, Priority. The ID is server-assigned and
// deliberately left out of the default set.
func (v *TodoValidator) validateTodo(ctx context.Context, todo models.Todo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldTitle, FieldDescription, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTodoID:
			if todo.ID <= 0 {
				return ErrInvalidTodoID
			}
		case FieldOwnerID:
			if todo.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldTitle:
			if err := checkTitle(todo.Title); err != nil {
				return err
			}
		case FieldDescription:
			if err := checkDescription(todo.Description); err != nil {
				return err
			}
		case FieldPriority:
			if todo.Priority < minPriority || todo.Priority > maxPriority {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTodoUpdate validates a full-replacement update descriptor.
//
// Default validated fields: TodoID, OwnerID, Title, Description, Priority.
func (v *TodoValidator) validateTodoUpdate(ctx context.Context, update models.TodoUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTodoID, FieldOwnerID, FieldTitle, FieldDescription, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTodoID:
			if update.ID <= 0 {
				return ErrInvalidTodoID
			}
		case FieldOwnerID:
			if update.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldTitle:
			if err := checkTitle(update.Title); err != nil {
				return err
			}
		case FieldDescription:
			if err := checkDescription(update.Description); err != nil {
				return err
			}
		case FieldPriority:
			if update.Priority < minPriority || update.Priority > maxPriority {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// length checks count runes, not bytes, so multibyte titles are not
// rejected early.
func checkTitle(title string) error {
	if utf8.RuneCountInString(strings.TrimSpace(title)) < minTitleLength {
		return ErrTitleTooShort
	}
	return nil
}

func checkDescription(description string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(description))
	if length < minDescriptionLength || length > maxDescriptionLength {
		return ErrDescriptionLength
	}
	return nil
}
