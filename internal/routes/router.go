package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pfjetdev/pfjet-sub000/internal/api"
	"github.com/pfjetdev/pfjet-sub000/internal/db"
	"github.com/pfjetdev/pfjet-sub000/internal/logging"
	"github.com/pfjetdev/pfjet-sub000/internal/metrics"
	"github.com/pfjetdev/pfjet-sub000/internal/middleware"
	"github.com/pfjetdev/pfjet-sub000/internal/workers"
)

func RegisterRoutes(upSince time.Time) http.Handler {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	logging.Info("Router initialized", "middleware", []string{"request_id", "metrics", "cors"})

	// Background cache warming keeps the first request after a TTL
	// expiry fast.
	workers.InitWorkers(deps.Services.Catalog)

	RegisterAPIRoutes(r, deps)

	return r
}
