// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment via the `env` / `envPrefix` tags.
// The legacy MONGO_URI variable is copied into the storage DSN when
// STORAGE_DB_DATABASE_URI is not set.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" && cfg.MongoURI != "" {
		cfg.Storage.DB.DSN = cfg.MongoURI
	}

	return nil
}
