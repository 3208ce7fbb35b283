package cache

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/mvg-commute/config"
	"github.com/theoremus-urban-solutions/mvg-commute/mvg"
)

// walkSlackDivisor controls how much of the nominal walking time must
// still remain for a connection to count as reachable: at least
// walk/walkSlackDivisor before the planned departure.
const walkSlackDivisor = 2

// DefaultMinConnections is how many cached connections an entry must
// hold to be worth keeping without a refresh.
const DefaultMinConnections = 3

// Entry pairs one desired connection with the connections currently
// known for it. An empty list means the entry needs a refresh.
type Entry struct {
	Desired     config.DesiredConnection
	Connections []mvg.Connection
}

// ConnectionsCache holds one entry per configured desired connection,
// in configuration order.
type ConnectionsCache struct {
	Entries []Entry
}

// New builds a cache with an empty entry per desired connection.
func New(desired []config.DesiredConnection) ConnectionsCache {
	entries := make([]Entry, len(desired))
	for i, d := range desired {
		entries[i] = Entry{Desired: d}
	}
	return ConnectionsCache{Entries: entries}
}

// Reconcile aligns the cache with the current configuration. If the
// cached desired connections equal the configured ones, in order, the
// cache is returned unchanged; any drift discards all cached
// connections and starts over from the configured list.
func (cc ConnectionsCache) Reconcile(desired []config.DesiredConnection) ConnectionsCache {
	if len(cc.Entries) == len(desired) {
		same := true
		for i, entry := range cc.Entries {
			if !entry.Desired.Equal(desired[i]) {
				same = false
				break
			}
		}
		if same {
			return cc
		}
	}
	return New(desired)
}

// EvictUnreachable drops connections that already departed or that can
// no longer be reached on foot: less than walk/walkSlackDivisor of the
// walking time remains before the planned departure. Entries that are
// already empty pass through unchanged.
func (cc ConnectionsCache) EvictUnreachable(now time.Time) ConnectionsCache {
	entries := make([]Entry, len(cc.Entries))
	for i, entry := range cc.Entries {
		if len(entry.Connections) == 0 {
			entries[i] = entry
			continue
		}
		slack := entry.Desired.WalkToStart.Std() / walkSlackDivisor
		kept := make([]mvg.Connection, 0, len(entry.Connections))
		for _, conn := range entry.Connections {
			departure := conn.PlannedDepartureTime()
			if now.After(departure) || now.After(departure.Add(-slack)) {
				continue
			}
			kept = append(kept, conn)
		}
		entries[i] = Entry{Desired: entry.Desired, Connections: kept}
	}
	return ConnectionsCache{Entries: entries}
}

// EvictDisallowedStart drops connections whose first leg is a walk or
// runs on a line from the entry's ignore list. The walk allowance
// already covers reaching the first station, so a connection that
// itself starts with walking adds nothing.
func (cc ConnectionsCache) EvictDisallowedStart() ConnectionsCache {
	entries := make([]Entry, len(cc.Entries))
	for i, entry := range cc.Entries {
		if len(entry.Connections) == 0 {
			entries[i] = entry
			continue
		}
		kept := make([]mvg.Connection, 0, len(entry.Connections))
		for _, conn := range entry.Connections {
			first := conn.Departure()
			if first.Line.TransportType == mvg.Pedestrian {
				continue
			}
			if ignoredLabel(entry.Desired.IgnoreStartingWith, first.Line.Label) {
				continue
			}
			kept = append(kept, conn)
		}
		entries[i] = Entry{Desired: entry.Desired, Connections: kept}
	}
	return ConnectionsCache{Entries: entries}
}

// EvictTooFew clears entries holding fewer than limit connections, so
// the next refresh fetches a full set instead of topping up a short
// one. Empty entries and entries at or above the limit are unchanged.
func (cc ConnectionsCache) EvictTooFew(limit int) ConnectionsCache {
	entries := make([]Entry, len(cc.Entries))
	for i, entry := range cc.Entries {
		if n := len(entry.Connections); 0 < n && n < limit {
			entries[i] = Entry{Desired: entry.Desired}
			continue
		}
		entries[i] = entry
	}
	return ConnectionsCache{Entries: entries}
}

// FetchFunc resolves one desired connection to fresh routing results.
type FetchFunc func(ctx context.Context, desired config.DesiredConnection) ([]mvg.Connection, error)

// RefreshEmpty fetches connections for every entry whose list is
// empty, concurrently. Entries that already hold connections pass
// through untouched and fetch is never called for them. The first
// fetch error cancels the remaining fetches and is returned.
func (cc ConnectionsCache) RefreshEmpty(ctx context.Context, fetch FetchFunc) (ConnectionsCache, error) {
	entries := make([]Entry, len(cc.Entries))
	copy(entries, cc.Entries)

	// Each goroutine writes only its own index, so the fan-in needs no
	// locking.
	g, ctx := errgroup.WithContext(ctx)
	for i := range entries {
		if len(entries[i].Connections) > 0 {
			continue
		}
		i := i
		g.Go(func() error {
			connections, err := fetch(ctx, entries[i].Desired)
			if err != nil {
				return err
			}
			entries[i].Connections = connections
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ConnectionsCache{}, err
	}
	return ConnectionsCache{Entries: entries}, nil
}

// WalkConnection is one connection from the merged view together with
// the walk allowance of the entry it came from.
type WalkConnection struct {
	WalkToStart time.Duration
	Connection  mvg.Connection
}

// LeaveBy is the moment the user has to leave to catch the connection:
// the planned departure minus the walk to the start station.
func (w WalkConnection) LeaveBy() time.Time {
	return w.Connection.PlannedDepartureTime().Add(-w.WalkToStart)
}

// AllConnections flattens the cache into a single view ordered by
// LeaveBy, earliest first; ties keep entry order. Connections whose
// first leg runs on an ignored line are filtered here as well, since
// some callers build the view without running eviction.
func (cc ConnectionsCache) AllConnections() []WalkConnection {
	var all []WalkConnection
	for _, entry := range cc.Entries {
		for _, conn := range entry.Connections {
			if ignoredLabel(entry.Desired.IgnoreStartingWith, conn.Departure().Line.Label) {
				continue
			}
			all = append(all, WalkConnection{
				WalkToStart: entry.Desired.WalkToStart.Std(),
				Connection:  conn,
			})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].LeaveBy().Before(all[j].LeaveBy())
	})
	return all
}

func ignoredLabel(ignore []string, label string) bool {
	for _, l := range ignore {
		if l == label {
			return true
		}
	}
	return false
}
