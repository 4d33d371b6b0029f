// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/require"
)

func validUser() models.User {
	return models.User{
		Email:    "john@example.com",
		Username: "john",
		Password: "s3cret",
	}
}

func TestUserValidate_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("User value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validUser()))
	})

	t.Run("User pointer", func(t *testing.T) {
		user := validUser()
		require.NoError(t, v.Validate(ctx, &user))
	})
}

func TestValidateUser(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(user *models.User)
		wantErr error
	}{
		{
			name:    "valid user",
			mutate:  func(user *models.User) {},
			wantErr: nil,
		},
		{
			name:    "empty username",
			mutate:  func(user *models.User) { user.Username = "   " },
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "empty email",
			mutate:  func(user *models.User) { user.Email = "" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email without at sign",
			mutate:  func(user *models.User) { user.Email = "john.example.com" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email without domain",
			mutate:  func(user *models.User) { user.Email = "john@" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email with double at sign",
			mutate:  func(user *models.User) { user.Email = "john@host@example.com" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "empty password",
			mutate:  func(user *models.User) { user.Password = "" },
			wantErr: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(&user)

			err := v.Validate(ctx, user)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateUser_FieldScoping(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	user := validUser()
	user.Password = ""

	require.NoError(t, v.Validate(ctx, user, FieldUsername, FieldEmail))
	require.ErrorIs(t, v.Validate(ctx, user, FieldPassword), ErrEmptyPassword)
	require.ErrorIs(t, v.Validate(ctx, user, "no_such_field"), ErrUnknownField)
}
