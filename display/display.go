// Package display renders connections as single human-readable lines.
package display

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/mvg-commute/mvg"
)

// Render formats one connection as a single line: minutes until the
// user has to leave home, departure and arrival times, the first stop,
// and the first ride. Times render in local time.
func Render(c mvg.Connection, walkToStart time.Duration, now time.Time) string {
	departure := c.PlannedDepartureTime().Local()
	arrival := c.PlannedArrivalTime().Local()
	leaveIn := departure.Add(-walkToStart).Sub(now)
	minutes := int(math.Ceil(leaveIn.Minutes()))

	first := c.Departure()

	var b strings.Builder
	fmt.Fprintf(&b, "🏡 In %2d min, ⚐%s ⚑%s, 🚏%s",
		minutes,
		departure.Format("15:04"),
		arrival.Format("15:04"),
		first.From.Name)

	switch {
	case len(c.Parts) == 1:
		if first.Line.TransportType == mvg.Pedestrian {
			// The whole connection is a walk to the destination.
			b.WriteString(" 🏃")
		} else {
			fmt.Fprintf(&b, " %s%s", first.Line.TransportType.Icon(), first.Line.Label)
		}
	case len(c.Parts) >= 2:
		if first.Line.TransportType == mvg.Pedestrian {
			fmt.Fprintf(&b, " → 🏃%s", first.To.Name)
		} else {
			fmt.Fprintf(&b, " → %s %s%s", first.To.Name, first.Line.TransportType.Icon(), first.Line.Label)
		}
	}
	return b.String()
}
