package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/CemWebDev/python-todo-backend/internal/app"
	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/utils"
)

const limiterCleanupInterval = 5 * time.Minute

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	limit    rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

func newIPRateLimiter(cfg config.RateLimit) *ipRateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.RequestsPerMinute
	}

	return &ipRateLimiter{
		limit:       rate.Limit(float64(cfg.RequestsPerMinute) / time.Minute.Seconds()),
		burst:       burst,
		lastCleanup: time.Now(),
	}
}

func (l *ipRateLimiter) limiter(key string) *rate.Limiter {
	if limiter, ok := l.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	actual, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.limit, l.burst))
	l.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup drops buckets that have refilled completely, i.e. clients
// that have been idle.
func (l *ipRateLimiter) maybeCleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if time.Since(l.lastCleanup) < limiterCleanupInterval {
		return
	}
	l.lastCleanup = time.Now()

	l.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(l.burst) {
			l.limiters.Delete(key)
		}
		return true
	})
}

func (l *ipRateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		limiter := l.limiter(key)

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			delay := reservation.Delay()
			reservation.Cancel()

			retryAfter := max(int(math.Ceil(delay.Seconds())), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

			logger.FromRequest(r).Warn().
				Str("client_ip", key).
				Str("path", r.URL.Path).
				Int("retry_after", retryAfter).
				Msg("rate limit exceeded")
			utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr, which middleware.RealIP has
// already replaced with the forwarded address when one was present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
