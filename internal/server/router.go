package server

import (
	"net/http"

	"edu-prompt-web/internal/server/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter は、ミドルウェアとルーティングを統合した http.Handler を構築します。
func NewRouter(webHandler *handlers.Handler) http.Handler {
	r := chi.NewRouter()

	setupCommonMiddleware(r)
	setupRoutes(r, webHandler)

	return r
}

func setupCommonMiddleware(r *chi.Mux) {
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
}

func setupRoutes(r chi.Router, webHandler *handlers.Handler) {
	// --- 運用ルート ---
	r.Get("/healthz", webHandler.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	// --- Web UI ---
	r.Get("/", webHandler.Index)
	r.Post("/generate", webHandler.HandleSubmit)

	// --- JSON API ---
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/lessons/generate", webHandler.HandleAPIGenerate)
	})
}
