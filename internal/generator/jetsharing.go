package generator

import (
	"math"

	"github.com/pfjetdev/pfjet-sub000/internal/models/dtos"
	"github.com/pfjetdev/pfjet-sub000/internal/models/entities"
)

// JetSharingPrefix tags jet-sharing listing ids.
const JetSharingPrefix = "js"

// Cabin seat ranges by canonical category. Total seats for a listing
// are drawn from the route category's range.
var seatRanges = map[string][2]int{
	"Turboprop":          {6, 8},
	"Very Light":         {4, 5},
	"Light":              {6, 7},
	"Midsize":            {7, 8},
	"Super-mid":          {8, 9},
	"Heavy":              {10, 14},
	"Ultra Long":         {12, 16},
	"VIP Airliner":       {16, 30},
	fallbackCategoryName: {6, 8},
}

// GenerateJetShares synthesizes per-seat shared-flight listings, one
// per usable route, deterministically for the given seed. Same stream
// discipline as GenerateEmptyLegs: the per-route draw order (aircraft,
// price factor, total seats, available seats, hour, minute, featured)
// is fixed and must not be rearranged.
func GenerateJetShares(seed int, routes []entities.Route, aircraft []entities.Aircraft, cityImages map[string]string) []dtos.FlightListing {
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

		var distanceNM float64
		if route.DistanceNM != nil && *route.DistanceNM > 0 {
			distanceNM = *route.DistanceNM
		} else {
			distanceNM = NauticalMilesBetween(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
		}

		seatPrice := JetSharingSeatPrice(route.AircraftCategory, distanceNM, rng)

		totalSeats := drawSeatCount(route.AircraftCategory, rng)
		availableSeats := drawAvailableSeats(totalSeats, rng)

		duration := NormalizeDuration(route.Duration)
		if duration == "" {
			duration = EstimateDuration(distanceNM*statuteMilesPerNauticalMile, ac.Speed)
		}

		departureTime := departureClock(rng)
		featured := rng.Float() > 0.85

		listings = append(listings, dtos.FlightListing{
			ID:             ListingID(JetSharingPrefix, seed, route.ID),
			From:           from,
			To:             to,
			DepartureDate:  dates[i%len(dates)],
			DepartureTime:  departureTime,
			ArrivalTime:    ArrivalTime(departureTime, duration),
			Aircraft:       aircraftSummary(ac),
			FlightDuration: duration,
			Pricing: dtos.ListingPricing{
				PricePerSeat: seatPrice,
				Currency:     "USD",
			},
			Status:         ListingStatusAvailable,
			TotalSeats:     totalSeats,
			AvailableSeats: availableSeats,
			IsFeatured:     featured,
		})
	}

	sortByDeparture(listings)
	return listings
}

func drawSeatCount(category string, rng *Rand) int {
	r := seatRanges[CanonicalCategory(category)]
	return r[0] + rng.IntN(r[1]-r[0]+1)
}

// drawAvailableSeats leaves a random 20–80% of the cabin unsold, never
// less than one seat.
func drawAvailableSeats(totalSeats int, rng *Rand) int {
	available := int(math.Floor(float64(totalSeats) * rng.Range(0.2, 0.8)))
	if available < 1 {
		available = 1
	}
	return available
}
