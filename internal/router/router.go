package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/forum-api/internal/middleware/metrics"
	"github.com/itchan-dev/forum-api/internal/setup"
)

// New creates the chi router with all routes. Mutating forum routes need a Bearer token.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/users", h.Register)
	r.Post("/authentications", h.Login)
	r.Get("/threads/{threadId}", h.GetThread)

	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.NeedAuth())
		r.Post("/threads", h.CreateThread)
		r.Post("/threads/{threadId}/comments", h.CreateComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	})

	return r
}
