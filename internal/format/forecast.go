// Package format turns decoded IPMA payloads into the text blocks returned
// as tool results. Every formatter is a pure function; "no data" inputs
// produce informational sentences, never errors.
package format

import (
	"fmt"
	"strings"

	"ipma-mcp/services/ipma"
)

// Forecast renders the daily forecast series for a resolved location. At
// most days entries are rendered, clamped to the available series length.
// Weather-type ids missing from the catalog render as "unknown".
func Forecast(loc *ipma.Location, days int, forecast *ipma.ForecastResponse, types []ipma.WeatherType) string {
	descByID := make(map[int]string, len(types))
	for _, wt := range types {
		desc := wt.DescriptionEN
		if desc == "" {
			desc = wt.DescriptionPT
		}
		descByID[wt.ID] = desc
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weather forecast for %s (%s, %s)\n", loc.Name, loc.Latitude, loc.Longitude)
	fmt.Fprintf(&b, "Updated: %s\n", forecast.DataUpdate)

	n := days
	if n > len(forecast.Data) {
		n = len(forecast.Data)
	}

	for _, day := range forecast.Data[:n] {
		desc, ok := descByID[day.WeatherTypeID]
		if !ok || desc == "" {
			desc = "unknown"
		}
		fmt.Fprintf(&b, "\n%s: %s°C to %s°C, %s. Precipitation %s%%, wind %s.\n",
			day.Date, day.TMin, day.TMax, desc, day.PrecipProb, day.WindDir)
	}

	return strings.TrimRight(b.String(), "\n")
}
