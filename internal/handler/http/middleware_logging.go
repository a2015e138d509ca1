package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
)

// withLogging writes one access log entry per request. The entry carries the
// matched route pattern so that /todos/{todoID} requests group together; the
// raw URI is kept alongside it.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.statusCode()
		event := logger.FromRequest(r).Info()
		if status >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Error()
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("route", routePattern(r)).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request served")
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unmatchedRoute
}
