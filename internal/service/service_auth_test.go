// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, username)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestAuthService(repo *mockUserRepository) AuthService {
	return NewAuthService(repo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: 20 * time.Minute,
	}, logger.Nop())
}

func registrationInput() models.User {
	return models.User{
		Email:    "john@example.com",
		Username: "john",
		Password: "s3cret",
	}
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), registrationInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Empty(t, persisted.Password, "plaintext password must never reach the repository")
	assert.True(t, persisted.IsActive)
	assert.Equal(t, "user", persisted.Role)

	// stored hash verifies against the original password
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.HashedPassword), []byte("s3cret")))
}

func TestRegisterUser_InvalidInput(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name   string
		mutate func(user *models.User)
	}{
		{"empty username", func(user *models.User) { user.Username = "" }},
		{"empty password", func(user *models.User) { user.Password = "" }},
		{"bad email", func(user *models.User) { user.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := registrationInput()
			tt.mutate(&user)

			_, err := svc.RegisterUser(context.Background(), user)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), registrationInput())
	require.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func storedUser(t *testing.T, password string, active bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return models.User{
		UserID:         1,
		Username:       "john",
		HashedPassword: string(hash),
		IsActive:       active,
		Role:           "user",
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(ctx context.Context, username string) (models.User, error) {
			return storedUser(t, "s3cret", true), nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), "john", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestLogin_EmptyInput(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), "", "s3cret")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "john", "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "ghost", "s3cret")
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(ctx context.Context, username string) (models.User, error) {
			return storedUser(t, "s3cret", true), nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "john", "not-the-password")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_InactiveAccount(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(ctx context.Context, username string) (models.User, error) {
			return storedUser(t, "s3cret", false), nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "john", "s3cret")
	require.ErrorIs(t, err, ErrUserInactive)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestCreateToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	user := models.User{UserID: 7, Username: "john", Role: "user"}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "john", parsed.Username())
	assert.Equal(t, int64(7), parsed.UserID())
}

func TestCreateToken_MissingUsername(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 7})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestParseToken_InvalidNormalised(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.token)
			require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestParseToken_ForeignIssuer(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	other := NewAuthService(&mockUserRepository{}, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "other-issuer",
		TokenDuration: time.Minute,
	}, logger.Nop())

	foreign, err := other.CreateToken(context.Background(), models.User{UserID: 7, Username: "john"})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
