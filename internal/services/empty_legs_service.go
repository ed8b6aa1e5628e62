package services

import (
	"context"
	"time"

	"github.com/pfjetdev/pfjet-sub000/internal/constants"
	"github.com/pfjetdev/pfjet-sub000/internal/generator"
	"github.com/pfjetdev/pfjet-sub000/internal/logging"
	"github.com/pfjetdev/pfjet-sub000/internal/models/dtos"
)

// EmptyLegsService orchestrates the empty-leg catalog: fetch reference
// data, synthesize deterministically for today's seed, drop departed
// flights, apply search filters.
type EmptyLegsService struct {
	catalog *CatalogService

	// now is injectable so tests can pin the clock.
	now func() time.Time
}

func NewEmptyLegsService(catalog *CatalogService) *EmptyLegsService {
	return &EmptyLegsService{catalog: catalog, now: time.Now}
}

// TodaysListings returns the filtered empty-leg catalog for the current
// local calendar day. A store failure propagates; an empty result after
// filtering is valid.
func (s *EmptyLegsService) TodaysListings(ctx context.Context, filter dtos.ListingFilter) ([]dtos.FlightListing, error) {
	routes, aircraft, images, err := s.catalog.FetchCatalog(ctx, constants.DefaultRouteLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	listings := generator.GenerateEmptyLegs(generator.DateSeed(now), routes, aircraft, images)
	listings = generator.FilterUpcoming(listings, now)
	return generator.ApplyFilter(listings, filter), nil
}

// GetByID regenerates the catalog for the seed embedded in the id and
// scans for a match. The embedded seed, not wall-clock today, drives
// regeneration: a listing produced before midnight still resolves
// after it. Returns nil on malformed ids, fetch errors and misses.
func (s *EmptyLegsService) GetByID(ctx context.Context, id string) *dtos.FlightListing {
	seed, _, ok := generator.ParseListingID(id, generator.EmptyLegPrefix)
	if !ok {
		return nil
	}

	routes, aircraft, images, err := s.catalog.FetchCatalog(ctx, constants.DefaultRouteLimit)
	if err != nil {
		logging.Error("empty leg lookup: catalog fetch failed", "id", id, "error", err.Error())
		return nil
	}

	for _, l := range generator.GenerateEmptyLegs(seed, routes, aircraft, images) {
		if l.ID == id {
			return &l
		}
	}
	return nil
}
