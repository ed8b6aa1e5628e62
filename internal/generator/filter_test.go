package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfjetdev/pfjet-sub000/internal/models/dtos"
)

func listingFixture(id, fromCity, toCity, date, depTime, category string, total, perSeat float64, availableSeats int) dtos.FlightListing {
	return dtos.FlightListing{
		ID:            id,
		From:          dtos.Airport{City: fromCity},
		To:            dtos.Airport{City: toCity},
		DepartureDate: date,
		DepartureTime: depTime,
		Aircraft:      dtos.AircraftSummary{Category: category},
		Pricing: dtos.ListingPricing{
			TotalPrice:   total,
			PricePerSeat: perSeat,
			Currency:     "USD",
		},
		Status:         ListingStatusAvailable,
		AvailableSeats: availableSeats,
	}
}

func TestIsUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	past := listingFixture("el-1-r1", "New York", "Miami", "2025-06-10", "09:00", "Light", 8000, 0, 0)
	future := listingFixture("el-1-r2", "New York", "Miami", "2025-06-20", "09:00", "Light", 8000, 0, 0)

	assert.False(t, IsUpcoming(past, now))
	assert.True(t, IsUpcoming(future, now))
}

func TestIsUpcomingSameDayIsStrict(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	morning := listingFixture("el-1-r1", "New York", "Miami", "2025-06-15", "09:00", "Light", 8000, 0, 0)
	noon := listingFixture("el-1-r2", "New York", "Miami", "2025-06-15", "12:00", "Light", 8000, 0, 0)
	evening := listingFixture("el-1-r3", "New York", "Miami", "2025-06-15", "18:30", "Light", 8000, 0, 0)

	assert.False(t, IsUpcoming(morning, now))
	assert.False(t, IsUpcoming(noon, now), "departure exactly now has already boarded")
	assert.True(t, IsUpcoming(evening, now))
}

func TestFilterUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	listings := []dtos.FlightListing{
		listingFixture("el-1-r1", "New York", "Miami", "2025-06-10", "09:00", "Light", 8000, 0, 0),
		listingFixture("el-1-r2", "New York", "Miami", "2025-06-15", "18:30", "Light", 8000, 0, 0),
		listingFixture("el-1-r3", "New York", "Miami", "2025-06-20", "09:00", "Light", 8000, 0, 0),
	}

	kept := FilterUpcoming(listings, now)
	require.Len(t, kept, 2)
	assert.Equal(t, "el-1-r2", kept[0].ID)
	assert.Equal(t, "el-1-r3", kept[1].ID)
}

func TestNormalizeCityName(t *testing.T) {
	assert.Equal(t, "new york", normalizeCityName("New York City, NY"))
	assert.Equal(t, "new york", normalizeCityName("  New York  "))
	assert.Equal(t, "miami", normalizeCityName("Miami, FL"))
	assert.Equal(t, "mexico", normalizeCityName("Mexico City"))
}

func TestCityMatchesBidirectional(t *testing.T) {
	assert.True(t, cityMatches("New York", "new york city"))
	assert.True(t, cityMatches("New York City", "york"))
	assert.False(t, cityMatches("New York", "Miami"))
	assert.False(t, cityMatches("", "Miami"))
}

func TestCategoryMatches(t *testing.T) {
	assert.True(t, categoryMatches("Light", "light"))
	assert.True(t, categoryMatches("Super Midsize", "super-mid"))
	assert.False(t, categoryMatches("Light", "Heavy"))
	// Two unknown categories only match on exact fold, never via the
	// shared fallback row.
	assert.False(t, categoryMatches("Zeppelin", "Blimp"))
	assert.True(t, categoryMatches("Zeppelin", "zeppelin"))
}

func TestApplyFilterAndSemantics(t *testing.T) {
	listings := []dtos.FlightListing{
		listingFixture("el-1-r1", "New York", "Miami", "2025-06-17", "09:00", "Light", 8000, 0, 0),
		listingFixture("el-1-r2", "New York", "Aspen", "2025-06-18", "09:00", "Heavy", 22000, 0, 0),
		listingFixture("el-1-r3", "Boston", "Miami", "2025-06-25", "09:00", "Light", 6000, 0, 0),
	}

	max := 10000.0
	got := ApplyFilter(listings, dtos.ListingFilter{
		From:     "new york",
		To:       "miami",
		PriceMax: &max,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "el-1-r1", got[0].ID)
}

func TestApplyFilterEmptyFilterKeepsAll(t *testing.T) {
	listings := []dtos.FlightListing{
		listingFixture("el-1-r1", "New York", "Miami", "2025-06-17", "09:00", "Light", 8000, 0, 0),
		listingFixture("el-1-r2", "New York", "Aspen", "2025-06-18", "09:00", "Heavy", 22000, 0, 0),
	}

	assert.Len(t, ApplyFilter(listings, dtos.ListingFilter{}), 2)
}

func TestApplyFilterDateWindow(t *testing.T) {
	listings := []dtos.FlightListing{
		listingFixture("el-1-r1", "New York", "Miami", "2025-06-17", "09:00", "Light", 8000, 0, 0),
		listingFixture("el-1-r2", "New York", "Miami", "2025-06-22", "09:00", "Light", 8000, 0, 0),
		listingFixture("el-1-r3", "New York", "Miami", "2025-06-28", "09:00", "Light", 8000, 0, 0),
	}

	got := ApplyFilter(listings, dtos.ListingFilter{DateFrom: "2025-06-20", DateTo: "2025-06-25"})
	require.Len(t, got, 1)
	assert.Equal(t, "el-1-r2", got[0].ID)
}

func TestApplyFilterPriceUsesPerSeatForJetShares(t *testing.T) {
	listings := []dtos.FlightListing{
		listingFixture("js-1-r1", "New York", "Miami", "2025-06-17", "09:00", "Light", 0, 450, 4),
		listingFixture("js-1-r2", "New York", "Miami", "2025-06-18", "09:00", "Heavy", 0, 1200, 6),
	}

	max := 500.0
	got := ApplyFilter(listings, dtos.ListingFilter{PriceMax: &max})
	require.Len(t, got, 1)
	assert.Equal(t, "js-1-r1", got[0].ID)
}

func TestApplyFilterMinSeats(t *testing.T) {
	listings := []dtos.FlightListing{
		listingFixture("js-1-r1", "New York", "Miami", "2025-06-17", "09:00", "Light", 0, 450, 2),
		listingFixture("js-1-r2", "New York", "Miami", "2025-06-18", "09:00", "Heavy", 0, 1200, 6),
	}

	minSeats := 4
	got := ApplyFilter(listings, dtos.ListingFilter{MinSeats: &minSeats})
	require.Len(t, got, 1)
	assert.Equal(t, "js-1-r2", got[0].ID)
}

func TestApplyFilterCategorySet(t *testing.T) {
	listings := []dtos.FlightListing{
		listingFixture("el-1-r1", "New York", "Miami", "2025-06-17", "09:00", "Light", 8000, 0, 0),
		listingFixture("el-1-r2", "New York", "Miami", "2025-06-18", "09:00", "Super Midsize", 14000, 0, 0),
		listingFixture("el-1-r3", "New York", "Miami", "2025-06-19", "09:00", "Heavy", 22000, 0, 0),
	}

	got := ApplyFilter(listings, dtos.ListingFilter{Categories: []string{"light", "super-mid"}})
	require.Len(t, got, 2)
	assert.Equal(t, "el-1-r1", got[0].ID)
	assert.Equal(t, "el-1-r2", got[1].ID)
}

func TestApplyFilterIdempotent(t *testing.T) {
	listings := GenerateEmptyLegs(scenarioSeed, testRoutes(), testFleet(), nil)
	f := dtos.ListingFilter{From: "new york"}

	once := ApplyFilter(listings, f)
	twice := ApplyFilter(once, f)
	assert.Equal(t, once, twice)
}
