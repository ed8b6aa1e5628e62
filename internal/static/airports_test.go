package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirportForCity(t *testing.T) {
	info, ok := AirportForCity("New York")
	require.True(t, ok)
	assert.Equal(t, "JFK", info.Code)
	assert.Equal(t, "US", info.CountryCode)

	_, ok = AirportForCity("Gotham")
	assert.False(t, ok)
}

func TestAirportForCityNormalizesInput(t *testing.T) {
	upper, ok := AirportForCity("  MIAMI  ")
	require.True(t, ok)
	lower, ok2 := AirportForCity("miami")
	require.True(t, ok2)
	assert.Equal(t, lower, upper)
}

func TestAirportForCityAliases(t *testing.T) {
	direct, ok := AirportForCity("New York")
	require.True(t, ok)

	for _, alias := range []string{"New York City", "NYC"} {
		got, ok := AirportForCity(alias)
		require.True(t, ok, "alias %q", alias)
		assert.Equal(t, direct, got, "alias %q", alias)
	}
}

func TestTimezoneForCity(t *testing.T) {
	assert.Equal(t, "America/New_York", TimezoneForCity("New York"))
	assert.Equal(t, "UTC", TimezoneForCity("Gotham"))
}
