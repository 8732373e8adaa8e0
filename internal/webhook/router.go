package webhook

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/repofleet/compliance-bot/internal/service"
)

// NewRouter assembles the HTTP surface: the webhook endpoint plus the
// read-only health and compliance-summary endpoints.
func NewRouter(handler *Handler, stats service.StatsService, log *logrus.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Post("/api/webhooks/github", handler.HandleGithub)

	router.Get("/api/compliance/summary", func(w http.ResponseWriter, r *http.Request) {
		summary, err := stats.Summary(r.Context())
		if err != nil {
			log.WithError(err).Error("computing compliance summary")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			log.WithError(err).Error("encoding compliance summary")
		}
	})

	return router
}
