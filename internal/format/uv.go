package format

import (
	"fmt"
	"strconv"
	"strings"

	"ipma-mcp/services/ipma"
)

// Truncation limits for the UV listing.
const (
	maxUVDates          = 3
	maxUVEntriesPerDate = 10
)

// UV renders the UV forecast grouped by date in first-seen order, at most
// maxUVDates dates with maxUVEntriesPerDate entries each. Location names
// come from the catalog joined on the location id.
func UV(entries []ipma.UVEntry, locations []ipma.Location) string {
	if len(entries) == 0 {
		return "No UV forecast data available."
	}

	nameByID := make(map[int]string, len(locations))
	for _, loc := range locations {
		nameByID[loc.GlobalID] = loc.Name
	}

	var dates []string
	byDate := make(map[string][]ipma.UVEntry)
	for _, e := range entries {
		if _, seen := byDate[e.Date]; !seen {
			dates = append(dates, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	if len(dates) > maxUVDates {
		dates = dates[:maxUVDates]
	}

	var b strings.Builder
	for i, date := range dates {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s:\n", date)

		dayEntries := byDate[date]
		if len(dayEntries) > maxUVEntriesPerDate {
			dayEntries = dayEntries[:maxUVEntriesPerDate]
		}

		for _, e := range dayEntries {
			index, err := strconv.ParseFloat(e.Index, 64)
			if err != nil {
				continue
			}

			name := nameByID[e.GlobalID]
			if name == "" {
				name = fmt.Sprintf("Local %d", e.GlobalID)
			}

			fmt.Fprintf(&b, "  - %s: UV %s (%s)", name, e.Index, uvBand(index))
			if e.Interval != "" {
				fmt.Fprintf(&b, ", %s", e.Interval)
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// uvBand classifies a UV index into the WHO exposure bands. Upper bounds
// are inclusive; first matching band wins.
func uvBand(index float64) string {
	switch {
	case index <= 2:
		return "Low"
	case index <= 5:
		return "Moderate"
	case index <= 7:
		return "High"
	case index <= 10:
		return "Very High"
	default:
		return "Extreme"
	}
}
