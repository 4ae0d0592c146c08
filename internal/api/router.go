package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Optiwork/internal/assign"
	"github.com/MikeSquared-Agency/Optiwork/internal/store"
)

func NewRouter(svc *assign.Service, s store.Store, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(240))

	matches := NewMatchesHandler(svc)
	assignments := NewAssignmentsHandler(svc, s)
	rosterH := NewRosterHandler(svc, s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/matches", matches.Compute)

		r.Get("/assignments", assignments.List)
		r.Get("/assignments/{id}", assignments.Get)
		r.Get("/roster", rosterH.Get)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.With(UserIDMiddleware).Post("/assignments", assignments.Create)
			r.Post("/roster/refresh", rosterH.Refresh)
			r.Get("/stats", rosterH.Stats)
		})
	})

	return r
}

// NewMetricsRouter serves health and the collectors registered on g.
func NewMetricsRouter(g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return r
}
