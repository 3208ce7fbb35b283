package mvg

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a location query produced no stations.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no matches for %s", e.Name)
}

// AmbiguousStationError indicates multiple stations matched a name and
// none of them matched it exactly.
type AmbiguousStationError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousStationError) Error() string {
	return fmt.Sprintf("ambiguous results for %s: %s", e.Name, strings.Join(e.Candidates, ", "))
}
