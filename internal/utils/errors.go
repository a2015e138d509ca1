package utils

import "errors"

// ErrMalformedAPIKey is returned by DecodeAPIKey when the key is not valid
// base64, does not decode to UTF-8, or lacks the "email:user_id" shape.
var ErrMalformedAPIKey = errors.New("malformed API key")
