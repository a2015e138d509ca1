// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// DefaultServerURL is the todo server address used by the client when none
// is configured.
const DefaultServerURL = "http://localhost:8000"

// ErrInvalidClientConfigs indicates an empty server address or a negative
// request timeout.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig holds the settings of the todo command-line client.
type ClientConfig struct {
	// ServerURL is the base address of the todo server.
	// Env: TODO_SERVER_URL, flag: -s
	ServerURL string `env:"TODO_SERVER_URL"`

	// APIKey is sent in X-API-Key with protected requests.
	// Env: TODO_API_KEY, flag: -k
	APIKey string `env:"TODO_API_KEY"`

	// RequestTimeout bounds one request. Zero disables it.
	// Env: TODO_REQUEST_TIMEOUT, flag: -timeout
	RequestTimeout time.Duration `env:"TODO_REQUEST_TIMEOUT"`

	// LogLevel is the zerolog level of the client's stderr log.
	// Env: TODO_LOG_LEVEL, flag: -log-level
	LogLevel string `env:"TODO_LOG_LEVEL"`

	// Args are the positional arguments left after flag parsing: the
	// command and its operands.
	Args []string
}

// GetClientConfig merges defaults, environment and flags from args (later
// sources override non-zero fields of earlier ones) and validates the result.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{
		ServerURL:      DefaultServerURL,
		RequestTimeout: 10 * time.Second,
		LogLevel:       "warn",
	}

	envCfg := &ClientConfig{}
	if err := env.Parse(envCfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	cfg.Args = flagCfg.Args

	if cfg.ServerURL == "" || cfg.RequestTimeout < 0 {
		return nil, ErrInvalidClientConfigs
	}

	return cfg, nil
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("todo-client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "s", "", "Todo server URL")
	fs.StringVar(&cfg.APIKey, "k", "", "API key")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Args = fs.Args()

	return cfg, nil
}
