package generator

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfjetdev/pfjet-sub000/internal/models/entities"
)

func TestGenerateJetSharesDeterministic(t *testing.T) {
	routes := testRoutes()
	fleet := testFleet()

	a := GenerateJetShares(scenarioSeed, routes, fleet, nil)
	b := GenerateJetShares(scenarioSeed, routes, fleet, nil)

	assert.True(t, reflect.DeepEqual(a, b))
}

func TestGenerateJetSharesListingShape(t *testing.T) {
	listings := GenerateJetShares(scenarioSeed, testRoutes(), testFleet(), nil)
	require.Len(t, listings, len(testRoutes()))

	for _, l := range listings {
		assert.True(t, strings.HasPrefix(l.ID, "js-20250615-"), "id %q", l.ID)
		assert.GreaterOrEqual(t, l.Pricing.PricePerSeat, float64(jetSharingSeatFloor))
		assert.Zero(t, l.Pricing.TotalPrice, "jet shares price per seat, not per aircraft")
		assert.Equal(t, "USD", l.Pricing.Currency)
		assert.Equal(t, ListingStatusAvailable, l.Status)
		assert.Equal(t, l.ArrivalTime, ArrivalTime(l.DepartureTime, l.FlightDuration))
	}
}

func TestGenerateJetSharesSeatBounds(t *testing.T) {
	routes := testRoutes()
	fleet := testFleet()

	// Sweep a couple of weeks of seeds so the seat draws cover the
	// ranges, not just one day's values.
	for seed := 20250601; seed <= 20250614; seed++ {
		for _, l := range GenerateJetShares(seed, routes, fleet, nil) {
			assert.GreaterOrEqual(t, l.TotalSeats, 4, "seed %d id %s", seed, l.ID)
			assert.LessOrEqual(t, l.TotalSeats, 30, "seed %d id %s", seed, l.ID)
			assert.GreaterOrEqual(t, l.AvailableSeats, 1, "seed %d id %s", seed, l.ID)
			assert.LessOrEqual(t, l.AvailableSeats, l.TotalSeats, "seed %d id %s", seed, l.ID)
		}
	}
}

func TestGenerateJetSharesCategorySeatRange(t *testing.T) {
	routes := []entities.Route{testRoute("r1", "New York", "Miami", "Light")}
	fleet := testFleet()

	for seed := 20250601; seed <= 20250630; seed++ {
		listings := GenerateJetShares(seed, routes, fleet, nil)
		require.Len(t, listings, 1)
		assert.GreaterOrEqual(t, listings[0].TotalSeats, 6)
		assert.LessOrEqual(t, listings[0].TotalSeats, 7)
	}
}

func TestDrawSeatCountUnknownCategoryUsesFallbackRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		n := drawSeatCount("Zeppelin", NewRand(i+1))
		assert.GreaterOrEqual(t, n, 6)
		assert.LessOrEqual(t, n, 8)
	}
}

func TestDrawAvailableSeatsNeverZero(t *testing.T) {
	rng := NewRand(9)
	for i := 0; i < 500; i++ {
		n := drawAvailableSeats(1, rng)
		assert.Equal(t, 1, n)
	}
}

func TestGenerateJetSharesFeaturedDeterministic(t *testing.T) {
	a := GenerateJetShares(scenarioSeed, testRoutes(), testFleet(), nil)
	b := GenerateJetShares(scenarioSeed, testRoutes(), testFleet(), nil)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].IsFeatured, b[i].IsFeatured)
	}
}

func TestEmptyLegAndJetShareStreamsIndependent(t *testing.T) {
	// Both generators seed their own PRNG, so generating one catalog
	// must not perturb the other.
	routes := testRoutes()
	fleet := testFleet()

	elAlone := GenerateEmptyLegs(scenarioSeed, routes, fleet, nil)
	_ = GenerateJetShares(scenarioSeed, routes, fleet, nil)
	elAfter := GenerateEmptyLegs(scenarioSeed, routes, fleet, nil)

	assert.True(t, reflect.DeepEqual(elAlone, elAfter))
}
