package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ipma-mcp/services/ipma"
)

var uvLocations = []ipma.Location{
	{GlobalID: 1110600, Name: "Lisboa"},
	{GlobalID: 1131200, Name: "Porto"},
}

func TestUVEmpty(t *testing.T) {
	assert.Equal(t, "No UV forecast data available.", UV(nil, uvLocations))
}

func TestUVGroupsByDate(t *testing.T) {
	out := UV([]ipma.UVEntry{
		{Date: "2026-08-25", GlobalID: 1110600, Index: "8.4", Interval: "12h-15h"},
		{Date: "2026-08-26", GlobalID: 1110600, Index: "7.9", Interval: "12h-15h"},
		{Date: "2026-08-25", GlobalID: 1131200, Index: "6.2", Interval: ""},
	}, uvLocations)

	assert.Contains(t, out, "2026-08-25:\n  - Lisboa: UV 8.4 (Very High), 12h-15h\n  - Porto: UV 6.2 (High)")
	assert.Contains(t, out, "2026-08-26:\n  - Lisboa: UV 7.9 (Very High), 12h-15h")
}

func TestUVUnknownLocationFallback(t *testing.T) {
	out := UV([]ipma.UVEntry{
		{Date: "2026-08-25", GlobalID: 42, Index: "3.0"},
	}, uvLocations)

	assert.Contains(t, out, "  - Local 42: UV 3.0 (Moderate)")
}

func TestUVUnparsableIndexSkipped(t *testing.T) {
	out := UV([]ipma.UVEntry{
		{Date: "2026-08-25", GlobalID: 1110600, Index: "n/a"},
		{Date: "2026-08-25", GlobalID: 1131200, Index: "4.0"},
	}, uvLocations)

	assert.NotContains(t, out, "Lisboa")
	assert.Contains(t, out, "Porto: UV 4.0 (Moderate)")
}

func TestUVTruncation(t *testing.T) {
	var entries []ipma.UVEntry
	for d := 0; d < 5; d++ {
		for i := 0; i < 12; i++ {
			entries = append(entries, ipma.UVEntry{
				Date:     fmt.Sprintf("2026-08-2%d", d),
				GlobalID: 1000 + i,
				Index:    "5.0",
			})
		}
	}

	out := UV(entries, nil)

	assert.Equal(t, 3, strings.Count(out, ":\n"), "at most 3 dates")
	assert.Equal(t, 30, strings.Count(out, "  - "), "at most 10 entries per date")
	assert.Contains(t, out, "2026-08-22:")
	assert.NotContains(t, out, "2026-08-23:")
}

func TestUVBands(t *testing.T) {
	tests := []struct {
		index float64
		want  string
	}{
		{0, "Low"},
		{2.0, "Low"},
		{2.1, "Moderate"},
		{5.0, "Moderate"},
		{5.1, "High"},
		{7.0, "High"},
		{7.1, "Very High"},
		{10.0, "Very High"},
		{10.1, "Extreme"},
		{13.2, "Extreme"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, uvBand(tt.index), "index %.1f", tt.index)
	}
}
