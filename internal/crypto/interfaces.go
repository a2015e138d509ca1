package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing digests and
// checks candidates against them. Digests embed their own salt and cost, so
// verification needs no extra state.
type PasswordHasher interface {
	// Hash returns a fresh salted digest of password. Two calls with the
	// same password return different digests.
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches digest. A mismatch is
	// (false, nil); an unparsable digest is an error.
	Verify(ctx context.Context, password, digest string) (bool, error)
}

// Executor runs CPU-heavy work somewhere other than the calling goroutine,
// typically a bounded worker pool.
type Executor interface {
	Do(ctx context.Context, fn func()) error
}
