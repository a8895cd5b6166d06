package format

import (
	"fmt"
	"strconv"
	"strings"

	"ipma-mcp/services/ipma"
)

// maxSeismicEvents caps the rendered events; upstream order is assumed
// most-recent-first and is not re-sorted.
const maxSeismicEvents = 10

// Seismic renders recent events for an area. area is the canonical
// selector name, used only in the header.
func Seismic(area string, resp *ipma.SeismicResponse) string {
	if len(resp.Data) == 0 {
		return "No recent seismic data."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Seismic events (%s), updated %s\n", area, resp.Data[0].DataUpdate)

	events := resp.Data
	if len(events) > maxSeismicEvents {
		events = events[:maxSeismicEvents]
	}

	for _, e := range events {
		region := "N/A"
		if e.Region != nil && *e.Region != "" {
			region = *e.Region
		}
		fmt.Fprintf(&b, "\n%s: M%s %s, depth %s km, %s, at (%s, %s) [%s]",
			e.Time, e.Magnitude, e.MagType,
			strconv.FormatFloat(e.Depth, 'f', -1, 64),
			region, e.Latitude, e.Longitude, e.Source)
	}

	return b.String()
}
