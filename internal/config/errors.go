package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDSN indicates a DSN whose scheme matches no backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN scheme")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a bcrypt cost outside the allowed range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker count.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
