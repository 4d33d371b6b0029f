package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errNoServicesProvided
	}

	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run drives the client lifecycle: the login flow first, then the main loop.
// A logout from the main loop restarts the whole cycle with a fresh login.
func (a *App) Run() error {
	ctx := context.Background()

	userID, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("login flow: %w", err)
	}

	a.logger.Info().Int64("user_id", userID).Msg("user logged in")
	a.services.TodoService.SetOwner(userID)

	logout, err := a.tui.MainLoop(ctx, userID)
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	if logout {
		a.logger.Info().Int64("user_id", userID).Msg("user logged out")
		return a.Run()
	}

	return nil
}
