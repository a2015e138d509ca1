package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAPIKey(t *testing.T) {
	key := EncodeAPIKey("a@b.co", "64b7f0c2a1b2c3d4e5f60718")
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("a@b.co:64b7f0c2a1b2c3d4e5f60718")), key)
}

func TestDecodeAPIKey_RoundTrip(t *testing.T) {
	key := EncodeAPIKey("user@example.com", "64b7f0c2a1b2c3d4e5f60718")

	email, id, err := DecodeAPIKey(key)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", id)
}

func TestDecodeAPIKey_Errors(t *testing.T) {
	b64 := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name string
		key  string
	}{
		{name: "not base64", key: "!!!not-base64!!!"},
		{name: "missing padding", key: "YUBiLmNvOjE"},
		{name: "no separator", key: b64("a@b.co")},
		{name: "too many separators", key: b64("a:b@c.co:123")},
		{name: "invalid utf8", key: base64.StdEncoding.EncodeToString([]byte{0xff, ':', 'x'})},
		{name: "empty", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeAPIKey(tt.key)
			assert.ErrorIs(t, err, ErrMalformedAPIKey)
		})
	}
}

// TestDecodeAPIKey_EmptyParts verifies that empty halves still decode; the
// caller rejects them when the user lookup fails.
func TestDecodeAPIKey_EmptyParts(t *testing.T) {
	email, id, err := DecodeAPIKey(EncodeAPIKey("", ""))
	require.NoError(t, err)
	assert.Empty(t, email)
	assert.Empty(t, id)
}
