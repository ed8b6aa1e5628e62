package generator

import (
	"regexp"
	"strings"
	"time"

	"github.com/pfjetdev/pfjet-sub000/internal/models/dtos"
)

// IsUpcoming reports whether a listing still lies in the future.
// Same-day listings must depart strictly after now; any other date only
// needs to be today or later. "Today" uses the same local-date
// convention as the daily seed so both checks agree within a request.
func IsUpcoming(l dtos.FlightListing, now time.Time) bool {
	today := now.Format(departureDateLayout)
	if l.DepartureDate == today {
		dep, err := time.ParseInLocation(
			departureDateLayout+" 15:04",
			l.DepartureDate+" "+l.DepartureTime,
			time.Local,
		)
		if err != nil {
			return false
		}
		return dep.After(now)
	}
	return l.DepartureDate >= today
}

// FilterUpcoming drops listings whose departure has already elapsed.
func FilterUpcoming(listings []dtos.FlightListing, now time.Time) []dtos.FlightListing {
	out := make([]dtos.FlightListing, 0, len(listings))
	for _, l := range listings {
		if IsUpcoming(l, now) {
			out = append(out, l)
		}
	}
	return out
}

var (
	countrySuffixRe = regexp.MustCompile(`,\s*[a-z]{2}$`)
	citySuffixRe    = regexp.MustCompile(`\s+city$`)
)

// normalizeCityName lowercases and strips display suffixes so that
// "New York City, NY" matches a route stored as "New York".
func normalizeCityName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = countrySuffixRe.ReplaceAllString(s, "")
	s = citySuffixRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// cityMatches is a bidirectional substring test over normalized names.
func cityMatches(listingCity, wanted string) bool {
	a := normalizeCityName(listingCity)
	b := normalizeCityName(wanted)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func categoryMatches(listingCategory, wanted string) bool {
	if strings.EqualFold(strings.TrimSpace(listingCategory), strings.TrimSpace(wanted)) {
		return true
	}
	lc := CanonicalCategory(listingCategory)
	wc := CanonicalCategory(wanted)
	return lc != fallbackCategoryName && lc == wc
}

// ApplyFilter returns the listings matching every populated dimension
// of the filter. An absent key constrains nothing; an empty result is a
// valid "nothing matched", distinct from the hard no-data errors raised
// at fetch time. Price bounds apply to the total price for empty legs
// and the per-seat price for jet sharing.
func ApplyFilter(listings []dtos.FlightListing, f dtos.ListingFilter) []dtos.FlightListing {
	out := make([]dtos.FlightListing, 0, len(listings))
	for _, l := range listings {
		if matchesFilter(l, f) {
			out = append(out, l)
		}
	}
	return out
}

func matchesFilter(l dtos.FlightListing, f dtos.ListingFilter) bool {
	if f.From != "" && !cityMatches(l.From.City, f.From) {
		return false
	}
	if f.To != "" && !cityMatches(l.To.City, f.To) {
		return false
	}
	if f.DateFrom != "" && l.DepartureDate < f.DateFrom {
		return false
	}
	if f.DateTo != "" && l.DepartureDate > f.DateTo {
		return false
	}

	price := l.Pricing.TotalPrice
	if price == 0 {
		price = l.Pricing.PricePerSeat
	}
	if f.PriceMin != nil && price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && price > *f.PriceMax {
		return false
	}

	if f.MinSeats != nil && l.AvailableSeats < *f.MinSeats {
		return false
	}

	if f.Category != "" && !categoryMatches(l.Aircraft.Category, f.Category) {
		return false
	}
	if len(f.Categories) > 0 {
		matched := false
		for _, c := range f.Categories {
			if categoryMatches(l.Aircraft.Category, c) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}
