package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"ipma-mcp/services/ipma"
)

// maxStations caps the rendered station ids from the selected bucket.
const maxStations = 15

// Stations renders the most recent observation bucket. Bucket selection is
// by lexicographically last timestamp key; upstream keys sort temporally.
// Station ids render in sorted order so output is deterministic.
func Stations(observations ipma.ObservationMap, catalog []ipma.Station) string {
	bucket, timestamp := latestBucket(observations)
	if len(bucket) == 0 {
		return "No station observations available."
	}

	nameByID := make(map[string]string, len(catalog))
	for _, st := range catalog {
		nameByID[strconv.Itoa(st.Properties.ID)] = st.Properties.Name
	}

	ids := make([]string, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) > maxStations {
		ids = ids[:maxStations]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Station observations at %s\n", timestamp)

	for _, id := range ids {
		obs := bucket[id]
		if obs == nil {
			continue
		}

		name := nameByID[id]
		if name == "" {
			name = "Station " + id
		}
		fmt.Fprintf(&b, "\n%s:\n", name)

		writeMeasurement(&b, "temperature", obs.Temperature, "°C")
		writeMeasurement(&b, "humidity", obs.Humidity, "%")
		writeMeasurement(&b, "pressure", obs.Pressure, "hPa")
		writeMeasurement(&b, "wind speed", obs.WindIntensity, "km/h")
		writeMeasurement(&b, "precipitation", obs.Precipitation, "mm")
	}

	return strings.TrimRight(b.String(), "\n")
}

func latestBucket(observations ipma.ObservationMap) (map[string]*ipma.Observation, string) {
	var latest string
	for ts := range observations {
		if ts > latest {
			latest = ts
		}
	}
	return observations[latest], latest
}

// writeMeasurement emits one reading line, suppressing the "not measured"
// sentinel entirely.
func writeMeasurement(b *strings.Builder, label string, value float64, unit string) {
	if value <= ipma.SentinelUnavailable {
		return
	}
	fmt.Fprintf(b, "  %s: %s %s\n", label, strconv.FormatFloat(value, 'f', -1, 64), unit)
}
