package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/risehub-org/risehub/internal/api"
	"github.com/risehub-org/risehub/internal/api/handlers"
	"github.com/risehub-org/risehub/internal/api/middleware"
)

type RouterConfig struct {
	SearchHandler      *handlers.SearchHandler
	InteractionHandler *handlers.InteractionHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))
	r.Use(middleware.Identity)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/search", cfg.SearchHandler.Search)
	r.Post("/interactions", cfg.InteractionHandler.Record)

	return r
}
