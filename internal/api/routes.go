package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)
	r.Use(tracingMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/healthcheck", h.HealthCheck)
	r.Post("/check", h.CheckWallet)
	r.Get("/recent-checks", h.GetRecentChecks)
	r.Get("/subnet-stats/{subnetId}", h.GetSubnetStats)
	r.Get("/wallet-info/*", h.GetWalletInfo)

	return r
}
