package generator

import (
	"github.com/pfjetdev/pfjet-sub000/internal/logging"
	"github.com/pfjetdev/pfjet-sub000/internal/models/dtos"
	"github.com/pfjetdev/pfjet-sub000/internal/models/entities"
)

// EmptyLegPrefix tags empty-leg listing ids.
const EmptyLegPrefix = "el"

// GenerateEmptyLegs synthesizes one empty-leg listing per usable route,
// deterministically for the given seed. Routes are iterated in fetch
// order and share a single PRNG stream, so the Nth route's draws are
// always the Nth draws; reordering the upstream fetch changes every
// listing after the reordering point.
//
// Routes whose cities cannot be resolved are skipped, not errors.
func GenerateEmptyLegs(seed int, routes []entities.Route, aircraft []entities.Aircraft, cityImages map[string]string) []dtos.FlightListing {
	rng := NewRand(seed)
	base := SeedDate(seed)
	dates := datePool(rng, len(routes), base)

	listings := make([]dtos.FlightListing, 0, len(routes))
	for i, route := range routes {
		from, to, ok := routeAirports(route, cityImages)
		if !ok {
			continue
		}

		ac := pickAircraft(rng, aircraft, route.AircraftCategory)

		// Stored route distances are nautical miles; the empty-leg
		// fee table is per statute mile.
		var distanceMiles float64
		if route.DistanceNM != nil && *route.DistanceNM > 0 {
			distanceMiles = *route.DistanceNM * statuteMilesPerNauticalMile
		} else {
			distanceMiles = MilesBetween(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
		}

		price := EmptyLegPrice(route.AircraftCategory, distanceMiles, rng)

		duration := NormalizeDuration(route.Duration)
		if duration == "" {
			duration = EstimateDuration(distanceMiles, ac.Speed)
		}

		departureTime := departureClock(rng)

		listings = append(listings, dtos.FlightListing{
			ID:             ListingID(EmptyLegPrefix, seed, route.ID),
			From:           from,
			To:             to,
			DepartureDate:  dates[i%len(dates)],
			DepartureTime:  departureTime,
			ArrivalTime:    ArrivalTime(departureTime, duration),
			Aircraft:       aircraftSummary(ac),
			FlightDuration: duration,
			Pricing: dtos.ListingPricing{
				TotalPrice: price,
				Currency:   "USD",
			},
			Status: ListingStatusAvailable,
		})
	}

	sortByDeparture(listings)
	return listings
}

// routeAirports resolves both endpoints of a route, logging and
// reporting false when either side is missing or unserved.
func routeAirports(route entities.Route, cityImages map[string]string) (from, to dtos.Airport, ok bool) {
	if route.FromCity == nil || route.ToCity == nil {
		logging.Warn("route missing joined city rows, skipping",
			"route_id", route.ID,
		)
		return dtos.Airport{}, dtos.Airport{}, false
	}

	from, okFrom := resolveAirport(*route.FromCity, cityImages)
	to, okTo := resolveAirport(*route.ToCity, cityImages)
	if !okFrom || !okTo {
		logging.Warn("route city not in airport table, skipping",
			"route_id", route.ID,
			"from", route.FromCity.Name,
			"to", route.ToCity.Name,
		)
		return dtos.Airport{}, dtos.Airport{}, false
	}
	return from, to, true
}
