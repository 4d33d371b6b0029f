// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// The bare GOOGLE_API_KEY variable (the name the original deployment used)
// is honoured as a fallback when APP_GOOGLE_API_KEY is not set.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.App.GoogleAPIKey == "" {
		cfg.App.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	}

	return nil
}
