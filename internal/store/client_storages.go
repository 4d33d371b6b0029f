package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [LocalTodoRepository]; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// TodoRepository is the SQLite-backed repository that caches the
	// logged-in user's todos locally on the client device.
	TodoRepository LocalTodoRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Creates the cache schema when it is missing.
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [LocalTodoRepository].
//
// Returns an error if the database connection cannot be established or if
// schema creation fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if _, err := db.ExecContext(ctx, createTodoCacheTable); err != nil {
		return nil, fmt.Errorf("cache schema creation failed: %w", err)
	}

	return &ClientStorages{
		TodoRepository: NewLocalTodoRepository(db, logger),
	}, nil
}
