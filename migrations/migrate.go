// Package migrations holds the embedded goose migrations for the SQL
// storage backends, one directory per dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
)

// Dialects understood by Migrate. The values name both the goose dialect and
// the embedded directory.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var dialectDirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

// Migrate applies every pending migration for dialect.
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through zerolog. Fatalf does not exit;
// goose returns the error to Migrate instead.
type gooseLogger struct {
	log *logger.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info().Str("component", "goose").Msgf(format, v...)
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error().Str("component", "goose").Msgf(format, v...)
}
