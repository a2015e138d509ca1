// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if _, err := cfg.Storage.DB.Driver(); err != nil {
		return err
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d is out of [%d, %d]",
			ErrInvalidAppConfigs, cfg.App.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.Hashers <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
