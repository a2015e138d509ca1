package http

import (
	"net/http"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/utils"
)

const apiKeyHeader = "X-API-Key"

// apiKeyAuth is an HTTP middleware that resolves the caller from the
// "X-API-Key" header.
//
// On success the resolved user is stored in the request context (see
// [utils.WithUser]) before delegating to the next handler. The request is
// rejected with 401 when the header is absent, when the key cannot be
// decoded, or when it names no matching user. A failing user lookup is a 500.
func (h *Handler) apiKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		apiKey := r.Header.Get(apiKeyHeader)
		if apiKey == "" {
			log.Warn().Err(ErrEmptyAPIKeyHeader).Send()
			writeError(w, r, ErrEmptyAPIKeyHeader)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Resolve(ctx, apiKey)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
