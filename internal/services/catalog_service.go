package services

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pfjetdev/pfjet-sub000/internal/common"
	"github.com/pfjetdev/pfjet-sub000/internal/constants"
	"github.com/pfjetdev/pfjet-sub000/internal/logging"
	"github.com/pfjetdev/pfjet-sub000/internal/models/entities"
)

// Read-side store contracts, satisfied by the sqlx repositories and by
// test mocks.
type RouteReader interface {
	ListRoutes(ctx context.Context, limit int) ([]entities.Route, error)
}

type AircraftReader interface {
	ListAircraft(ctx context.Context) ([]entities.Aircraft, error)
}

type CityImageReader interface {
	ListCityImages(ctx context.Context) (map[string]string, error)
}

// CatalogService serves the reference data synthesis runs on: routes,
// aircraft and city images, each behind the time-boxed cache. A fetch
// that yields zero rows is a hard error, never an empty catalog.
type CatalogService struct {
	routes   RouteReader
	aircraft AircraftReader
	cities   CityImageReader
	cache    common.CacheInterface
}

func NewCatalogService(routes RouteReader, aircraft AircraftReader, cities CityImageReader, cache common.CacheInterface) *CatalogService {
	return &CatalogService{
		routes:   routes,
		aircraft: aircraft,
		cities:   cities,
		cache:    cache,
	}
}

// cachedFetch reads through the cache with JSON serialization, so the
// same call path works against the in-memory and Redis backends. Cache
// content is only ever a performance detail: a decode failure falls
// through to the loader.
func cachedFetch[T any](cache common.CacheInterface, key string, loader func() (T, error)) (T, error) {
	if raw, found := cache.Get(key); found {
		var payload []byte
		switch v := raw.(type) {
		case string:
			payload = []byte(v)
		case []byte:
			payload = v
		}
		if payload != nil {
			var out T
			if err := json.Unmarshal(payload, &out); err == nil {
				return out, nil
			}
			logging.Warn("cache: stale or undecodable entry, reloading", "key", key)
		}
	}

	val, err := loader()
	if err != nil {
		var zero T
		return zero, err
	}

	if data, err := json.Marshal(val); err == nil {
		cache.Set(key, string(data), constants.CatalogCacheTTL)
	}
	return val, nil
}

// FetchRoutes returns up to limit routes, cached per limit value.
func (s *CatalogService) FetchRoutes(ctx context.Context, limit int) ([]entities.Route, error) {
	key := fmt.Sprintf("%s_%d", constants.CacheKeyRoutes, limit)
	return cachedFetch(s.cache, key, func() ([]entities.Route, error) {
		routes, err := s.routes.ListRoutes(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("fetching routes: %w", err)
		}
		if len(routes) == 0 {
			return nil, constants.ErrNoRoutes
		}
		return routes, nil
	})
}

func (s *CatalogService) FetchAircraft(ctx context.Context) ([]entities.Aircraft, error) {
	return cachedFetch(s.cache, string(constants.CacheKeyAircraft), func() ([]entities.Aircraft, error) {
		aircraft, err := s.aircraft.ListAircraft(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching aircraft: %w", err)
		}
		if len(aircraft) == 0 {
			return nil, constants.ErrNoAircraft
		}
		return aircraft, nil
	})
}

// FetchCityImages is best-effort: a missing image catalog degrades the
// listings cosmetically, it never blocks synthesis.
func (s *CatalogService) FetchCityImages(ctx context.Context) map[string]string {
	images, err := cachedFetch(s.cache, string(constants.CacheKeyCityImages), func() (map[string]string, error) {
		return s.cities.ListCityImages(ctx)
	})
	if err != nil {
		logging.Warn("city image fetch failed, listings will have no images", "error", err.Error())
		return map[string]string{}
	}
	return images
}

// FetchCatalog fans out the route and aircraft reads concurrently,
// then collects city images. Either hard failure aborts the whole
// fetch.
func (s *CatalogService) FetchCatalog(ctx context.Context, limit int) ([]entities.Route, []entities.Aircraft, map[string]string, error) {
	var (
		routes   []entities.Route
		aircraft []entities.Aircraft
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		routes, err = s.FetchRoutes(gctx, limit)
		return err
	})
	g.Go(func() error {
		var err error
		aircraft, err = s.FetchAircraft(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	return routes, aircraft, s.FetchCityImages(ctx), nil
}
