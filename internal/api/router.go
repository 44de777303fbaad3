package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/EcoSentry/FloraRisk/internal/assess"
	"github.com/EcoSentry/FloraRisk/internal/catalog"
	"github.com/EcoSentry/FloraRisk/internal/config"
	"github.com/EcoSentry/FloraRisk/internal/events"
)

func NewRouter(s catalog.Store, ev events.Client, engine *assess.Assessor, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimitPerMinute))

	assessments := NewAssessmentsHandler(engine, ev, cfg)
	species := NewSpeciesHandler(s, ev, engine, cfg)
	reference := NewReferenceHandler()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/assessments", assessments.Create)

		r.Get("/scale", reference.Scale)
		r.Get("/quantifiers", reference.Quantifiers)

		r.Get("/species", species.List)
		r.Get("/species/{id}", species.Get)
		r.Post("/species/{id}/assess", species.Assess)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Post("/species", species.Create)
			r.Delete("/species/{id}", species.Delete)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
