/*
Package cache holds the connection cache and the eviction and refresh
pipeline around it.

The cache pairs every configured desired connection with the
connections currently known for it. An entry with an empty connection
list means "needs refresh", never "no connections exist". Each run
pushes the cache through a fixed sequence of pure transformations:

	load -> Reconcile -> EvictUnreachable -> EvictTooFew
	     -> RefreshEmpty -> EvictUnreachable -> EvictDisallowedStart
	     -> save -> AllConnections

Every time-sensitive step takes its "now" as an explicit parameter;
nothing in this package reads a clock. The only concurrency is inside
RefreshEmpty, which fans the per-entry fetches out and aggregates them
fail-fast.
*/
package cache
