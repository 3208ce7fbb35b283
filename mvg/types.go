package mvg

import "time"

// TransportType identifies the product operating a connection part.
type TransportType string

const (
	Schiff      TransportType = "SCHIFF"
	Ruftaxi     TransportType = "RUFTAXI"
	Bahn        TransportType = "BAHN"
	UBahn       TransportType = "UBAHN"
	Tram        TransportType = "TRAM"
	SBahn       TransportType = "SBAHN"
	Bus         TransportType = "BUS"
	RegionalBus TransportType = "REGIONAL_BUS"
	Pedestrian  TransportType = "PEDESTRIAN"
)

// Icon returns the emoji rendered for this transport type. Unknown
// types render as an empty string.
func (t TransportType) Icon() string {
	switch t {
	case Bahn, SBahn:
		return "🚆"
	case UBahn:
		return "🚇"
	case Tram:
		return "🚊"
	case Bus, RegionalBus:
		return "🚍"
	case Schiff:
		return "🛳"
	case Ruftaxi:
		return "🚖"
	case Pedestrian:
		return "🚶"
	default:
		return ""
	}
}

// Station is a location the routing API can route between.
type Station struct {
	GlobalID string `json:"globalId"`
	Name     string `json:"name"`
}

// ConnectionPartPlace is one end of a connection part.
type ConnectionPartPlace struct {
	Name             string    `json:"name"`
	PlannedDeparture time.Time `json:"plannedDeparture"`
}

// Line is the labelled product serving a connection part. Walking
// parts carry the Pedestrian transport type.
type Line struct {
	Label         string        `json:"label"`
	TransportType TransportType `json:"transportType"`
}

// ConnectionPart is one leg of a connection.
type ConnectionPart struct {
	From ConnectionPartPlace `json:"from"`
	To   ConnectionPartPlace `json:"to"`
	Line Line                `json:"line"`
}

// Connection is one routing result, an ordered non-empty sequence of
// parts.
type Connection struct {
	Parts []ConnectionPart `json:"parts"`
}

// Departure returns the first part of the connection.
func (c Connection) Departure() ConnectionPart {
	if len(c.Parts) == 0 {
		panic("connection without at least one part makes no sense at all")
	}
	return c.Parts[0]
}

// Arrival returns the last part of the connection.
func (c Connection) Arrival() ConnectionPart {
	if len(c.Parts) == 0 {
		panic("connection without at least one part makes no sense at all")
	}
	return c.Parts[len(c.Parts)-1]
}

// PlannedDepartureTime is when the connection leaves its first stop.
func (c Connection) PlannedDepartureTime() time.Time {
	return c.Departure().From.PlannedDeparture
}

// PlannedArrivalTime is when the connection reaches its final stop.
func (c Connection) PlannedArrivalTime() time.Time {
	return c.Arrival().To.PlannedDeparture
}
