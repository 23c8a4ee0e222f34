package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hamida-paiman/fraudscore/internal/model"
	"github.com/hamida-paiman/fraudscore/internal/scoring"
)

// NewRouter creates the Chi router with the web form, the JSON API, and
// the operational endpoints mounted.
func NewRouter(svc *scoring.Service, info model.Info) http.Handler {
	h := &Handlers{
		svc:  svc,
		info: info,
	}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Web form.
	r.Get("/", h.ShowForm)
	r.Post("/", h.SubmitForm)

	// JSON API.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SetHeader("Content-Type", "application/json"))
		r.Post("/score", h.Score)
		r.Get("/model", h.GetModelInfo)
	})

	// Operational endpoints.
	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
