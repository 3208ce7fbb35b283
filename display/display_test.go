package display

import (
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/mvg-commute/mvg"
)

func place(name string, at time.Time) mvg.ConnectionPartPlace {
	return mvg.ConnectionPartPlace{Name: name, PlannedDeparture: at}
}

func TestRenderSingleRide(t *testing.T) {
	departure := time.Date(2025, time.March, 3, 8, 30, 0, 0, time.Local)
	c := mvg.Connection{Parts: []mvg.ConnectionPart{{
		From: place("Waldfriedhof", departure),
		To:   place("Marienplatz", departure.Add(20*time.Minute)),
		Line: mvg.Line{Label: "U3", TransportType: mvg.UBahn},
	}}}
	now := departure.Add(-25 * time.Minute)

	got := Render(c, 10*time.Minute, now)
	want := "🏡 In 15 min, ⚐08:30 ⚑08:50, 🚏Waldfriedhof 🚇U3"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestRenderPureWalk(t *testing.T) {
	departure := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.Local)
	c := mvg.Connection{Parts: []mvg.ConnectionPart{{
		From: place("Zuhause", departure),
		To:   place("Marienplatz", departure.Add(10*time.Minute)),
		Line: mvg.Line{Label: "Fussweg", TransportType: mvg.Pedestrian},
	}}}
	now := departure.Add(-5 * time.Minute)

	got := Render(c, 0, now)
	want := "🏡 In  5 min, ⚐09:00 ⚑09:10, 🚏Zuhause 🏃"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestRenderMultiPartShowsInterchange(t *testing.T) {
	departure := time.Date(2025, time.March, 3, 17, 12, 0, 0, time.Local)
	interchange := departure.Add(8 * time.Minute)
	arrival := departure.Add(22 * time.Minute)
	c := mvg.Connection{Parts: []mvg.ConnectionPart{
		{
			From: place("Garching", departure),
			To:   place("Sendlinger Tor", interchange),
			Line: mvg.Line{Label: "U6", TransportType: mvg.UBahn},
		},
		{
			From: place("Sendlinger Tor", interchange.Add(2*time.Minute)),
			To:   place("Marienplatz", arrival),
			Line: mvg.Line{Label: "S2", TransportType: mvg.SBahn},
		},
	}}
	now := departure.Add(-10 * time.Minute)

	got := Render(c, 5*time.Minute, now)
	want := "🏡 In  5 min, ⚐17:12 ⚑17:34, 🚏Garching → Sendlinger Tor 🚇U6"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestRenderMultiPartWalkFirst(t *testing.T) {
	departure := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.Local)
	c := mvg.Connection{Parts: []mvg.ConnectionPart{
		{
			From: place("Waldfriedhof", departure),
			To:   place("Holzapfelkreuth", departure.Add(6*time.Minute)),
			Line: mvg.Line{Label: "Fussweg", TransportType: mvg.Pedestrian},
		},
		{
			From: place("Holzapfelkreuth", departure.Add(8*time.Minute)),
			To:   place("Marienplatz", departure.Add(20*time.Minute)),
			Line: mvg.Line{Label: "U6", TransportType: mvg.UBahn},
		},
	}}
	now := departure

	got := Render(c, 0, now)
	want := "🏡 In  0 min, ⚐12:00 ⚑12:20, 🚏Waldfriedhof → 🏃Holzapfelkreuth"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}
