package generator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pfjetdev/pfjet-sub000/internal/models/dtos"
	"github.com/pfjetdev/pfjet-sub000/internal/models/entities"
	"github.com/pfjetdev/pfjet-sub000/internal/static"
)

const (
	minDaysAhead  = 2
	daysAheadSpan = 13 // draws 0..12 on top of the minimum, so 2..14

	departureDateLayout = "2006-01-02"

	// ListingStatusAvailable is the only status synthesized listings
	// carry; anything sold or expired simply stops being generated.
	ListingStatusAvailable = "available"
)

// datePool draws one future date per route, then sorts the whole pool
// ascending. Dates are deliberately NOT paired with the route whose
// draw produced them: the synthesis loop reassigns them by sorted
// order, index-matched modulo pool size. The deployed catalog depends
// on this exact shape, so it must not be "fixed" into a 1:1 mapping.
func datePool(rng *Rand, n int, base time.Time) []string {
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		daysAhead := minDaysAhead + rng.IntN(daysAheadSpan)
		dates = append(dates, base.AddDate(0, 0, daysAhead).Format(departureDateLayout))
	}
	sort.Strings(dates)
	return dates
}

// resolveAirport turns a joined city row into an Airport, looking up
// coordinates in the static table and enriching with a timezone and an
// image (the city row's own image first, then the city image catalog).
func resolveAirport(city entities.City, cityImages map[string]string) (dtos.Airport, bool) {
	info, ok := static.AirportForCity(city.Name)
	if !ok {
		return dtos.Airport{}, false
	}

	image := ""
	if city.Image != nil && *city.Image != "" {
		image = *city.Image
	} else if img, found := cityImages[strings.ToLower(strings.TrimSpace(city.Name))]; found {
		image = img
	}

	countryCode := city.CountryCode
	if countryCode == "" {
		countryCode = info.CountryCode
	}

	return dtos.Airport{
		City:        city.Name,
		Code:        info.Code,
		Country:     info.Country,
		CountryCode: countryCode,
		Latitude:    info.Latitude,
		Longitude:   info.Longitude,
		Timezone:    static.TimezoneForCity(city.Name),
		Image:       image,
	}, true
}

// pickAircraft draws among aircraft matching the route's category,
// falling back to the whole pool when nothing matches. Exactly one
// draw is consumed either way. The pool must be non-empty; the service
// layer guarantees that before synthesis starts.
func pickAircraft(rng *Rand, pool []entities.Aircraft, category string) entities.Aircraft {
	want := CanonicalCategory(category)
	matches := make([]entities.Aircraft, 0, len(pool))
	for _, a := range pool {
		if CanonicalCategory(a.Category) == want {
			matches = append(matches, a)
		}
	}
	if len(matches) == 0 {
		matches = pool
	}
	return matches[rng.IntN(len(matches))]
}

// departureClock draws a quarter-hour departure slot in the
// 06:00–19:45 window. Two draws: hour, then minute.
func departureClock(rng *Rand) string {
	hour := 6 + rng.IntN(14)
	minute := rng.IntN(4) * 15
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func aircraftSummary(a entities.Aircraft) dtos.AircraftSummary {
	image := ""
	if a.Image != nil {
		image = *a.Image
	}
	return dtos.AircraftSummary{
		ID:           a.ID,
		Name:         a.Name,
		Slug:         a.Slug,
		Category:     a.Category,
		CategorySlug: a.CategorySlug,
		Image:        image,
		Passengers:   a.Passengers,
		Range:        a.Range,
		Speed:        a.Speed,
	}
}

// ListingID assembles "<prefix>-<seed>-<routeID>". The embedded seed is
// what makes detail-page lookups reproducible after midnight.
func ListingID(prefix string, seed int, routeID string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, seed, routeID)
}

// ParseListingID splits an id back into its seed and route id. Route
// ids are UUIDs and contain hyphens, so the split is bounded at three
// segments.
func ParseListingID(id, prefix string) (seed int, routeID string, ok bool) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 || parts[0] != prefix {
		return 0, "", false
	}
	seed, err := strconv.Atoi(parts[1])
	if err != nil || parts[2] == "" {
		return 0, "", false
	}
	return seed, parts[2], true
}

func sortByDeparture(listings []dtos.FlightListing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].DepartureDate < listings[j].DepartureDate
	})
}
