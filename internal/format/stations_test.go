package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipma-mcp/services/ipma"
)

func testStationCatalog() []ipma.Station {
	var lisboa, porto ipma.Station
	lisboa.Properties.ID = 1210881
	lisboa.Properties.Name = "Lisboa (Geofísico)"
	porto.Properties.ID = 1240549
	porto.Properties.Name = "Porto (Serra do Pilar)"
	return []ipma.Station{lisboa, porto}
}

func obs(temp, humidity, pressure, wind, precip float64) *ipma.Observation {
	return &ipma.Observation{
		Temperature:   temp,
		Humidity:      humidity,
		Pressure:      pressure,
		WindIntensity: wind,
		Precipitation: precip,
	}
}

func TestStationsEmpty(t *testing.T) {
	assert.Equal(t, "No station observations available.", Stations(nil, nil))
	assert.Equal(t, "No station observations available.", Stations(ipma.ObservationMap{}, nil))
	assert.Equal(t, "No station observations available.",
		Stations(ipma.ObservationMap{"2026-08-25T10:00": {}}, nil))
}

func TestStationsSelectsLatestBucket(t *testing.T) {
	observations := ipma.ObservationMap{
		"2026-08-25T09:00": {"1210881": obs(20.0, 60, 1014, 10, 0)},
		"2026-08-25T10:00": {"1210881": obs(24.1, 55, 1015, 12, 0)},
		"2026-08-24T23:00": {"1210881": obs(17.0, 70, 1013, 8, 0)},
	}

	out := Stations(observations, testStationCatalog())

	assert.True(t, strings.HasPrefix(out, "Station observations at 2026-08-25T10:00\n"))
	assert.Contains(t, out, "temperature: 24.1 °C")
	assert.NotContains(t, out, "20 °C")
	assert.NotContains(t, out, "17 °C")
}

func TestStationsSentinelSuppressed(t *testing.T) {
	observations := ipma.ObservationMap{
		"2026-08-25T10:00": {"1210881": obs(-99.5, 18.0, -99, -100, 0.4)},
	}

	out := Stations(observations, testStationCatalog())

	assert.NotContains(t, out, "temperature")
	assert.NotContains(t, out, "pressure")
	assert.NotContains(t, out, "wind speed")
	assert.NotContains(t, out, "-99")
	assert.Contains(t, out, "  humidity: 18 %")
	assert.Contains(t, out, "  precipitation: 0.4 mm")
}

func TestStationsCatalogJoinAndFallback(t *testing.T) {
	observations := ipma.ObservationMap{
		"2026-08-25T10:00": {
			"1210881": obs(24.1, 55, 1015, 12, 0),
			"9999999": obs(19.0, 60, 1012, 5, 0),
		},
	}

	out := Stations(observations, testStationCatalog())

	assert.Contains(t, out, "Lisboa (Geofísico):")
	assert.Contains(t, out, "Station 9999999:")
}

func TestStationsNullEntriesSkipped(t *testing.T) {
	observations := ipma.ObservationMap{
		"2026-08-25T10:00": {
			"1210881": obs(24.1, 55, 1015, 12, 0),
			"1240549": nil,
		},
	}

	out := Stations(observations, testStationCatalog())

	assert.Contains(t, out, "Lisboa (Geofísico):")
	assert.NotContains(t, out, "Porto (Serra do Pilar)")
}

func TestStationsTruncatesToFifteen(t *testing.T) {
	bucket := make(map[string]*ipma.Observation, 30)
	for i := 0; i < 30; i++ {
		bucket[fmt.Sprintf("12000%02d", i)] = obs(20.0, 50, 1015, 10, 0)
	}

	out := Stations(ipma.ObservationMap{"2026-08-25T10:00": bucket}, nil)

	require.Equal(t, 15, strings.Count(out, "Station 12000"))
	// Sorted id order: the first 15 ids survive the cut.
	assert.Contains(t, out, "Station 1200000:")
	assert.Contains(t, out, "Station 1200014:")
	assert.NotContains(t, out, "Station 1200015:")
}
