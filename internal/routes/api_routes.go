package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pfjetdev/pfjet-sub000/internal/api"
	"github.com/pfjetdev/pfjet-sub000/internal/middleware"
)

func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/empty-legs", api.EmptyLegsHandler(deps.Services.EmptyLegs))
		r.Get("/empty-legs/{id}", api.EmptyLegByIDHandler(deps.Services.EmptyLegs))

		r.Get("/jet-sharing", api.JetSharingHandler(deps.Services.JetShares))
		r.Get("/jet-sharing/{id}", api.JetShareByIDHandler(deps.Services.JetShares))

		r.Post("/orders", api.CreateOrderHandler(
			deps.Repo.Orders,
			deps.Services.EmptyLegs,
			deps.Services.JetShares,
			deps.Metrics,
		))

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RateLimitMiddleware)

			r.Get("/aircraft", api.AdminListAircraftHandler(deps.Repo.AircraftAdmin))
			r.Post("/aircraft", api.AdminCreateAircraftHandler(deps.Repo.AircraftAdmin, deps.Services.Cache))
			r.Put("/aircraft/{id}", api.AdminUpdateAircraftHandler(deps.Repo.AircraftAdmin, deps.Services.Cache))
			r.Delete("/aircraft/{id}", api.AdminDeleteAircraftHandler(deps.Repo.AircraftAdmin, deps.Services.Cache))

			r.Get("/orders", api.AdminListOrdersHandler(deps.Repo.Orders))
			r.Put("/orders/{id}", api.AdminUpdateOrderStatusHandler(deps.Repo.Orders))
			r.Delete("/orders/{id}", api.AdminDeleteOrderHandler(deps.Repo.Orders))
		})
	})
}
