// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
)

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	cost     int
	executor Executor
	logger   *logger.Logger
}

// NewBcryptHasher constructs a [PasswordHasher] producing "$2a$" bcrypt
// digests at the given cost. When executor is nil the work runs on the
// calling goroutine.
func NewBcryptHasher(cost int, executor Executor, log *logger.Logger) PasswordHasher {
	log.Debug().Int("cost", cost).Msg("bcrypt password hasher created")

	return &bcryptHasher{
		cost:     cost,
		executor: executor,
		logger:   log,
	}
}

func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	var (
		digest []byte
		err    error
	)

	runErr := h.run(ctx, func() {
		digest, err = bcrypt.GenerateFromPassword([]byte(password), h.cost)
	})
	if runErr != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, runErr)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(digest), nil
}

func (h *bcryptHasher) Verify(ctx context.Context, password, digest string) (bool, error) {
	var err error

	if runErr := h.run(ctx, func() {
		err = bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	}); runErr != nil {
		return false, runErr
	}

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword),
		errors.Is(err, bcrypt.ErrPasswordTooLong):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedDigest, err)
	}
}

func (h *bcryptHasher) run(ctx context.Context, fn func()) error {
	if h.executor == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn()
		return nil
	}

	return h.executor.Do(ctx, fn)
}
