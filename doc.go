// Package comap provides a concurrent, segmented-lock associative
// container: a key-value Map and a key-only Set sharing one chained-bucket
// design, safe for simultaneous use by many goroutines.
//
// Unlike a map guarded by one global mutex, comap partitions its buckets
// across a fixed array of segment locks, so operations on keys that land
// in different segments proceed in parallel. Growth is automatic: once the
// load factor crosses a threshold, the table is rehashed into a larger,
// prime-sized bucket array, with the rehash itself fanned out across
// goroutines.
//
// comap trades the lock-free, cache-line-packed design of typical
// high-throughput Go concurrent maps for a simpler, blocking contract
// built on ordinary *sync.Mutex* segments — deliberately so: it is aimed
// at bulk compute workloads (sparse accumulation, histogramming,
// memoization, deduplication) that hammer MapReduce and ApplyAll as hard
// as point lookups, where a chained-bucket table with a parallel
// traversal engine pays for itself more than a lock-free point-access
// fast path would.
//
// comap does not provide lock-free or wait-free progress, a defined
// iteration order, stable iterators across mutation, persistence,
// eviction, or shrinking on removal — the table only ever contracts on
// an explicit Clear.
package comap
