package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTodoID      = errors.New("invalid todo ID")
	ErrInvalidOwnerID     = errors.New("invalid owner ID")
	ErrTitleTooShort     = errors.New("title must be at least 3 characters")
	ErrDescriptionLength = errors.New("description must be between 3 and 1000 characters")
	ErrInvalidPriority   = errors.New("priority must be between 1 and 5")

	ErrEmptyUsername = errors.New("username is required")
	ErrInvalidEmail  = errors.New("a valid email is required")
	ErrEmptyPassword = errors.New("password is required")
)
