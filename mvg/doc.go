/*
Package mvg is a client for the MVG routing API (Munich public
transit).

It covers the two calls this tool needs:

  - resolving a station name to a unique station via the location
    endpoint, with an exact-name tiebreak when the query is ambiguous
  - fetching candidate connections between two stations from a given
    departure time

The API returns heterogeneous location objects; kinds this package does
not know are skipped rather than rejected, since the upstream may grow
new ones at any time.
*/
package mvg
