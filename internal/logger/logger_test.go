package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_RoleField verifies that every log entry contains the
// expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role", "debug")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "caller-role", "")

	l.Info().Msg("where")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	entry := decodeEntry(t, &buf)
	assert.Contains(t, entry["func"], "TestNewLogger_CallerFieldName")
}

// TestNewLogger_LevelFiltersOutput verifies that entries below the configured
// level are dropped.
func TestNewLogger_LevelFiltersOutput(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := newLogger(&buf, "level-role", "warn")

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" ERROR "))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("chatty"))
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger is a
// distinct instance which inherits the parent's fields.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "inherited-role", "debug")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()}
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req-value", entry["req-key"])
}
