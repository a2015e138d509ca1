package store

import (
	"context"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/migrations"
)

const (
	testUserID  = "64b7f0c2a1b2c3d4e5f60718"
	testTodoID  = "64b7f0c2a1b2c3d4e5f60719"
	otherUserID = "64b7f0c2a1b2c3d4e5f6071a"
)

var testTime = time.Date(2026, 3, 14, 15, 9, 26, 535000000, time.UTC)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newMockDB returns a Postgres-flavoured DB over sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, migrations.DialectPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop()), mock
}

func strPtr(s string) *string { return &s }
