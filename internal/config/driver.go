package config

import (
	"fmt"
	"strings"
)

// Supported storage drivers, selected by DSN scheme.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const sqliteScheme = "sqlite://"

// Driver returns the storage driver addressed by the DSN.
//
//   - mongodb://, mongodb+srv://  → [DriverMongo]
//   - postgres://, postgresql://  → [DriverPostgres]
//   - sqlite://, file:            → [DriverSQLite]
func (db DB) Driver() (string, error) {
	dsn := strings.ToLower(strings.TrimSpace(db.DSN))

	switch {
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return DriverMongo, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(dsn, sqliteScheme), strings.HasPrefix(dsn, "file:"):
		return DriverSQLite, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, db.DSN)
}

// SQLitePath returns the data source understood by the sqlite3 driver:
// the DSN without its sqlite:// scheme. file: URIs are passed through.
func (db DB) SQLitePath() string {
	dsn := strings.TrimSpace(db.DSN)
	if len(dsn) >= len(sqliteScheme) && strings.EqualFold(dsn[:len(sqliteScheme)], sqliteScheme) {
		return dsn[len(sqliteScheme):]
	}
	return dsn
}
