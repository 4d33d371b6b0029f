// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "go-todo-keeper"
	defaultTokenDuration  = 20 * time.Minute
	defaultRequestTimeout = 30 * time.Second
	defaultClientURL      = "http://localhost:8080"
	defaultClientCache    = "todo-cache.db"
	defaultClientTimeout  = 15 * time.Second
)

// applyDefaults fills in safe defaults for fields that no configuration
// source provided. Secrets (sign key, API key) are deliberately never
// defaulted.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = defaultClientURL
	}
	if cfg.Client.CachePath == "" {
		cfg.Client.CachePath = defaultClientCache
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = defaultClientTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Neither the database DSN nor the token sign key is required here: the
// client binary shares this config and needs neither. The server entry
// point enforces both before wiring its services.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// ValidateServer enforces the invariants the server binary cannot start
// without. Called from cmd/server after the merged config is built.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
