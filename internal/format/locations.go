package format

import (
	"fmt"
	"strings"

	"ipma-mcp/services/ipma"
)

// Locations renders the full catalog grouped by district id. Districts
// appear in first-seen catalog order; locations keep catalog order within
// their district.
func Locations(locations []ipma.Location) string {
	var districts []int
	byDistrict := make(map[int][]ipma.Location)
	for _, loc := range locations {
		if _, seen := byDistrict[loc.DistrictID]; !seen {
			districts = append(districts, loc.DistrictID)
		}
		byDistrict[loc.DistrictID] = append(byDistrict[loc.DistrictID], loc)
	}

	var b strings.Builder
	for i, district := range districts {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "District %d:\n", district)
		for _, loc := range byDistrict[district] {
			fmt.Fprintf(&b, "  - %s (%s, %s)\n", loc.Name, loc.Latitude, loc.Longitude)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
