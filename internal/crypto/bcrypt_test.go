package crypto

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/workers"
)

func newTestHasher(t *testing.T, executor Executor) PasswordHasher {
	t.Helper()
	return NewBcryptHasher(bcrypt.MinCost, executor, logger.Nop())
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := newTestHasher(t, nil)
	ctx := context.Background()

	digest, err := h.Hash(ctx, "secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$2a$"))

	ok, err := h.Verify(ctx, "secret1", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(ctx, "secret2", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	h := newTestHasher(t, nil)

	d1, err := h.Hash(context.Background(), "same-password")
	require.NoError(t, err)
	d2, err := h.Hash(context.Background(), "same-password")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
}

func TestBcryptHasher_VerifyMalformedDigest(t *testing.T) {
	h := newTestHasher(t, nil)

	ok, err := h.Verify(context.Background(), "secret1", "not-a-digest")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMalformedDigest)
}

func TestBcryptHasher_VerifyOverlongPassword(t *testing.T) {
	h := newTestHasher(t, nil)
	digest, err := h.Hash(context.Background(), "secret1")
	require.NoError(t, err)

	ok, err := h.Verify(context.Background(), strings.Repeat("x", 100), digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_HashOverlongPassword(t *testing.T) {
	h := newTestHasher(t, nil)

	_, err := h.Hash(context.Background(), strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrHashingPassword)
}

func TestBcryptHasher_UsesExecutor(t *testing.T) {
	pool := workers.NewPool("hashers", 2, logger.Nop())
	pool.Run()
	t.Cleanup(pool.Stop)

	h := newTestHasher(t, pool)

	digest, err := h.Hash(context.Background(), "pooled")
	require.NoError(t, err)

	ok, err := h.Verify(context.Background(), "pooled", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_CancelledContext(t *testing.T) {
	h := newTestHasher(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Hash(ctx, "secret1")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = h.Verify(ctx, "secret1", "$2a$04$abc")
	assert.ErrorIs(t, err, context.Canceled)
}
