package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

const apiKeySeparator = ":"

// EncodeAPIKey builds the API key handed out at login: the standard base64
// encoding (with padding) of "email:userID".
//
// The key carries no signature and never expires; anyone who knows an
// account's email and id can forge it.
func EncodeAPIKey(email, userID string) string {
	return base64.StdEncoding.EncodeToString([]byte(email + apiKeySeparator + userID))
}

// DecodeAPIKey reverses EncodeAPIKey.
//
// The decoded text must split on ":" into exactly two parts, so an email
// containing a colon yields a key that never decodes. Every failure wraps
// ErrMalformedAPIKey.
func DecodeAPIKey(key string) (email, userID string, err error) {
	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrMalformedAPIKey, err)
	}

	if !utf8.Valid(raw) {
		return "", "", fmt.Errorf("%w: not valid UTF-8", ErrMalformedAPIKey)
	}

	parts := strings.Split(string(raw), apiKeySeparator)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: expected email:user_id, got %d parts", ErrMalformedAPIKey, len(parts))
	}

	return parts[0], parts[1], nil
}
