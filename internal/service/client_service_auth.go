package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	created, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Register").Str("username", user.Username).Msg("registration on server failed")
		return models.User{}, fmt.Errorf("%w: %v", ErrRegisterOnServer, mapAdapterError(err))
	}

	return created, nil
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (int64, error) {
	token, err := a.adapter.Login(ctx, username, password)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Str("username", username).Msg("login on server failed")
		return 0, fmt.Errorf("%w: %v", ErrLoginOnServer, mapAdapterError(err))
	}

	// The adapter has stored the token; the user id claim labels cached rows.
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	return userID, nil
}
