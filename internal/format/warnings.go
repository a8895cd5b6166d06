package format

import (
	"fmt"
	"strings"
	"time"

	"ipma-mcp/services/ipma"
)

const displayTimeLayout = "2006-01-02 15:04"

// Warnings renders the active warnings, one block per warning. An empty
// list is the normal state and renders a fixed sentence.
func Warnings(warnings []ipma.Warning) string {
	if len(warnings) == 0 {
		return "No active weather warnings."
	}

	blocks := make([]string, 0, len(warnings))
	for _, w := range warnings {
		var b strings.Builder
		fmt.Fprintf(&b, "%s [%s] level %s: %s to %s",
			w.TypeName, w.AreaID, w.Level, displayTime(w.StartTime), displayTime(w.EndTime))
		if w.Text != "" {
			fmt.Fprintf(&b, "\n  %s", w.Text)
		}
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n\n")
}

// displayTime reformats an ISO 8601 timestamp for display; anything that
// does not parse is rendered verbatim.
func displayTime(ts string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format(displayTimeLayout)
		}
	}
	return ts
}
