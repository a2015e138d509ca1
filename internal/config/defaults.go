package config

import (
	"runtime"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultDSN points at a local MongoDB instance.
	DefaultDSN = "mongodb://localhost:27017/todo_app"

	// DefaultDatabaseName is the MongoDB database used when none is configured.
	DefaultDatabaseName = "todo_app"

	// DefaultHTTPAddress is the listen address of the HTTP server.
	DefaultHTTPAddress = "0.0.0.0:8000"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			BcryptCost: bcrypt.DefaultCost,
			LogLevel:   "debug",
		},
		Storage: Storage{
			DB: DB{
				DSN:  DefaultDSN,
				Name: DefaultDatabaseName,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: 5 * time.Second,
			RateLimit: RateLimit{
				RequestsPerMinute: 20,
				Burst:             20,
			},
		},
		Workers: Workers{
			Hashers: runtime.NumCPU(),
		},
	}
}
