package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router serving the whole API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	// service routes
	router.Get("/", h.root)
	router.Get("/healthz", h.healthz)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		if h.cfg.RateLimit.Enabled() {
			r.Use(newIPRateLimiter(h.cfg.RateLimit).middleware)
		}

		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})
	router.Post("/logout", h.logout)

	// routes with authorization
	router.Route("/todos", func(r chi.Router) {
		r.Use(h.apiKeyAuth)

		r.Post("/", h.createTodo)
		r.Get("/", h.listTodos)
		r.Get("/{todoID}", h.getTodo)
		r.Put("/{todoID}", h.updateTodo)
		r.Delete("/{todoID}", h.deleteTodo)
	})

	return router
}
