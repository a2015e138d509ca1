package http

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CemWebDev/python-todo-backend/internal/config"
)

func rateLimited(cfg config.RateLimit) http.Handler {
	return newIPRateLimiter(cfg).middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = addr
	return req
}

func TestIPRateLimiter_BurstThenReject(t *testing.T) {
	h := rateLimited(config.RateLimit{RequestsPerMinute: 60, Burst: 3})

	for i := range 3 {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, requestFrom("198.51.100.1:1000"))
		require.Equal(t, http.StatusOK, rr.Code, "request %d", i)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, requestFrom("198.51.100.1:1001"))

	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	retryAfter, err := strconv.Atoi(rr.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retryAfter, 1)
}

func TestIPRateLimiter_KeysByIP(t *testing.T) {
	h := rateLimited(config.RateLimit{RequestsPerMinute: 1, Burst: 1})

	first := httptest.NewRecorder()
	h.ServeHTTP(first, requestFrom("198.51.100.1:1000"))
	other := httptest.NewRecorder()
	h.ServeHTTP(other, requestFrom("198.51.100.2:1000"))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestNewIPRateLimiter_ZeroBurstFallsBackToRate(t *testing.T) {
	l := newIPRateLimiter(config.RateLimit{RequestsPerMinute: 30})

	assert.Equal(t, 30, l.burst)
	assert.InDelta(t, 0.5, float64(l.limit), 1e-9)
}

func TestClientIP(t *testing.T) {
	assert.Equal(t, "203.0.113.9", clientIP(requestFrom("203.0.113.9:4444")))
	assert.Equal(t, "203.0.113.9", clientIP(requestFrom("203.0.113.9")))
}
