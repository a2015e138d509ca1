package crypto

import "errors"

var (
	// ErrHashingPassword wraps failures while producing a digest.
	ErrHashingPassword = errors.New("error hashing password")
	// ErrMalformedDigest is returned by Verify for digests that are not
	// valid bcrypt strings.
	ErrMalformedDigest = errors.New("malformed password digest")
)
