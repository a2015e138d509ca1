package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/CemWebDev/python-todo-backend/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request with a trace id, reusing the caller's one when
// present, and stores a child logger carrying it in the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewRequestID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = utils.WithRequestID(ctx, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
