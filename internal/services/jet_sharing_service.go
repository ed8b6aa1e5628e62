package services

import (
	"context"
	"time"

	"github.com/pfjetdev/pfjet-sub000/internal/constants"
	"github.com/pfjetdev/pfjet-sub000/internal/generator"
	"github.com/pfjetdev/pfjet-sub000/internal/logging"
	"github.com/pfjetdev/pfjet-sub000/internal/models/dtos"
)

// JetSharingService is the per-seat counterpart of EmptyLegsService,
// sharing the same cached catalog fetch.
type JetSharingService struct {
	catalog *CatalogService
	now     func() time.Time
}

func NewJetSharingService(catalog *CatalogService) *JetSharingService {
	return &JetSharingService{catalog: catalog, now: time.Now}
}

func (s *JetSharingService) TodaysListings(ctx context.Context, filter dtos.ListingFilter) ([]dtos.FlightListing, error) {
	routes, aircraft, images, err := s.catalog.FetchCatalog(ctx, constants.DefaultRouteLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	listings := generator.GenerateJetShares(generator.DateSeed(now), routes, aircraft, images)
	listings = generator.FilterUpcoming(listings, now)
	return generator.ApplyFilter(listings, filter), nil
}

// GetByID mirrors EmptyLegsService.GetByID: the id's embedded seed
// drives regeneration so lookups survive the midnight seed change.
func (s *JetSharingService) GetByID(ctx context.Context, id string) *dtos.FlightListing {
	seed, _, ok := generator.ParseListingID(id, generator.JetSharingPrefix)
	if !ok {
		return nil
	}

	routes, aircraft, images, err := s.catalog.FetchCatalog(ctx, constants.DefaultRouteLimit)
	if err != nil {
		logging.Error("jet share lookup: catalog fetch failed", "id", id, "error", err.Error())
		return nil
	}

	for _, l := range generator.GenerateJetShares(seed, routes, aircraft, images) {
		if l.ID == id {
			return &l
		}
	}
	return nil
}
