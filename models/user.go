package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique e-mail address of the user.
	// Uniqueness is enforced at the persistence layer.
	Email string `json:"email"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// FirstName is the display first name of the user. Non-sensitive.
	FirstName string `json:"first_name"`

	// LastName is the display last name of the user. Non-sensitive.
	LastName string `json:"last_name"`

	// Password carries the plaintext password on inbound registration and
	// login requests only. It must be cleared as soon as the hash is
	// derived and is never persisted.
	Password string `json:"password,omitempty"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is not exposed via JSON.
	HashedPassword string `json:"-"`

	// IsActive marks whether the account may authenticate.
	// Inactive users are rejected at login.
	IsActive bool `json:"is_active"`

	// Role is a free-text role label embedded in issued tokens.
	Role string `json:"role"`

	// PhoneNumber is an optional contact number. No format validation
	// is applied.
	PhoneNumber string `json:"phone_number,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
