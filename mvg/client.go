package mvg

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.mvg.de/api/fib/v2/"

const userAgent = "mvg-commute"

// transportTypesParam lists every product a connection query should
// consider.
const transportTypesParam = "SCHIFF,RUFTAXI,BAHN,UBAHN,TRAM,SBAHN,BUS,REGIONAL_BUS"

// locationKindStation is the only location variant this tool acts on.
const locationKindStation = "STATION"

// location mirrors the wire shape of one entry in a location response.
// Entries of kinds other than stations still decode, they just carry
// fields we never read.
type location struct {
	Type     string `json:"type"`
	GlobalID string `json:"globalId"`
	Name     string `json:"name"`
}

// Client talks to the MVG routing API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the public MVG API. Proxies are taken
// from the environment.
func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

// NewClientWithBaseURL creates a client against an alternate API base
// URL.
func NewClientWithBaseURL(baseURL string) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
		},
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	u := c.baseURL + endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, u)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", u, err)
	}
	return nil
}

// GetLocationsByName queries the location endpoint and returns the
// stations among the results. Location kinds this tool does not know
// are skipped.
func (c *Client) GetLocationsByName(ctx context.Context, name string) ([]Station, error) {
	query := url.Values{}
	query.Set("query", name)

	var raw []location
	if err := c.getJSON(ctx, "location", query, &raw); err != nil {
		return nil, fmt.Errorf("failed to resolve location %q: %w", name, err)
	}
	stations := make([]Station, 0, len(raw))
	for _, loc := range raw {
		if loc.Type != locationKindStation {
			log.Printf("Skipping location of unknown type %q in response for %q", loc.Type, name)
			continue
		}
		stations = append(stations, Station{GlobalID: loc.GlobalID, Name: loc.Name})
	}
	return stations, nil
}

// FindUnambiguousStationByName resolves a station name to a single
// station. When several stations match, one whose name equals the
// query exactly wins; otherwise the resolution fails with an
// *AmbiguousStationError. No match at all fails with a *NotFoundError.
func (c *Client) FindUnambiguousStationByName(ctx context.Context, name string) (Station, error) {
	stations, err := c.GetLocationsByName(ctx, name)
	if err != nil {
		return Station{}, err
	}
	switch len(stations) {
	case 0:
		return Station{}, &NotFoundError{Name: name}
	case 1:
		return stations[0], nil
	}
	for _, s := range stations {
		if s.Name == name {
			return s, nil
		}
	}
	candidates := make([]string, len(stations))
	for i, s := range stations {
		candidates[i] = s.Name
	}
	return Station{}, &AmbiguousStationError{Name: name, Candidates: candidates}
}

// GetConnections fetches candidate connections between two stations
// departing at or after start. The API makes no ordering promise;
// callers sort themselves where order matters.
func (c *Client) GetConnections(ctx context.Context, origin, destination Station, start time.Time) ([]Connection, error) {
	query := url.Values{}
	query.Set("originStationGlobalId", origin.GlobalID)
	query.Set("destinationStationGlobalId", destination.GlobalID)
	query.Set("routingDateTime", start.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
	query.Set("routingDateTimeIsArrival", "false")
	query.Set("transportTypes", transportTypesParam)

	var connections []Connection
	if err := c.getJSON(ctx, "connection", query, &connections); err != nil {
		return nil, fmt.Errorf("failed to get connections from %s to %s: %w", origin.GlobalID, destination.GlobalID, err)
	}
	return connections, nil
}
