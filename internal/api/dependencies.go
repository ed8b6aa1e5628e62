package api

import (
	"github.com/pfjetdev/pfjet-sub000/internal/common"
	"github.com/pfjetdev/pfjet-sub000/internal/db"
	"github.com/pfjetdev/pfjet-sub000/internal/db/repositories"
	"github.com/pfjetdev/pfjet-sub000/internal/metrics"
	"github.com/pfjetdev/pfjet-sub000/internal/services"
)

type Repositories struct {
	Routes        *repositories.RouteRepository
	Aircraft      *repositories.AircraftRepository
	Cities        *repositories.CityRepository
	AircraftAdmin *repositories.AircraftAdminRepository
	Orders        *repositories.CharterOrderRepository
}

type Services struct {
	Cache     common.CacheInterface
	Catalog   *services.CatalogService
	EmptyLegs *services.EmptyLegsService
	JetShares *services.JetSharingService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories, cache and services off the
// already-initialized database handles.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Routes:        repositories.NewRouteRepository(db.DB),
		Aircraft:      repositories.NewAircraftRepository(db.DB),
		Cities:        repositories.NewCityRepository(db.DB),
		AircraftAdmin: repositories.NewAircraftAdminRepository(db.PgDB),
		Orders:        repositories.NewCharterOrderRepository(db.PgDB),
	}

	cache := common.NewCacheBackend(3600, 600)
	catalog := services.NewCatalogService(repos.Routes, repos.Aircraft, repos.Cities, cache)

	svcs := &Services{
		Cache:     cache,
		Catalog:   catalog,
		EmptyLegs: services.NewEmptyLegsService(catalog),
		JetShares: services.NewJetSharingService(catalog),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
