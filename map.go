package comap

// Map is a concurrent key-value associative container. Its zero value
// is not ready for use; construct one with NewMap.
type Map[K comparable, V any] struct {
	c *core[K, V]
}

// NewMap constructs an empty Map. hasher may be nil, in which case a
// seeded hash/maphash.Comparable hasher is used (see hash.go). options
// configure max load factor, worker-count upper bound, and presizing.
func NewMap[K comparable, V any](hasher Hasher[K], options ...Option) *Map[K, V] {
	return &Map[K, V]{c: newCore[K, V](hasher, mapCapacityPlanner, options...)}
}

// Insert sets key to value, creating the entry if absent or overwriting
// it if present. It returns a CapacityExceededError only in the rare
// case where this insert crosses the load-factor threshold and the
// resulting automatic rehash target cannot be represented by the
// capacity planner; that failure leaves the bucket array unchanged and
// the newly inserted entry in place.
func (m *Map[K, V]) Insert(key K, value V) error {
	return m.c.insert(key, value)
}

// Upsert applies mutate to key's existing value, or to a newly
// default-constructed value if key is absent, then links it.
func (m *Map[K, V]) Upsert(key K, mutate func(*V)) error {
	return m.c.upsert(key, mutate, nil)
}

// UpsertWithDefault is like Upsert, but a newly linked value is seeded
// from def before mutate runs.
func (m *Map[K, V]) UpsertWithDefault(key K, mutate func(*V), def V) error {
	return m.c.upsert(key, mutate, &def)
}

// Remove unlinks key's entry if present. It never triggers a rehash.
func (m *Map[K, V]) Remove(key K) {
	m.c.remove(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.c.contains(key)
}

// GetOrDefault returns key's value, or def if key is absent.
func (m *Map[K, V]) GetOrDefault(key K, def V) V {
	return m.c.getOrDefault(key, def)
}

// ApplyOne invokes handler on key's value iff present.
func (m *Map[K, V]) ApplyOne(key K, handler func(V)) {
	m.c.applyOne(key, handler)
}

// ApplyAll invokes handler on every (key, value) entry.
func (m *Map[K, V]) ApplyAll(handler func(K, V)) {
	m.c.applyAll(handler)
}

// Reserve grows the bucket array to at least minBuckets, returning a
// CapacityExceededError if the planner cannot represent that size. It
// never shrinks the table.
func (m *Map[K, V]) Reserve(minBuckets int) error {
	return m.c.reserve(uint64(minBuckets))
}

// Clear removes every entry and resets the bucket array to its initial
// size — the only operation that reduces BucketCount.
func (m *Map[K, V]) Clear() {
	m.c.clear()
}

// Size returns the number of live keys. Like the other scalar
// observers, it is unsynchronized with concurrent mutators and may be
// momentarily stale.
func (m *Map[K, V]) Size() int {
	return m.c.size()
}

// BucketCount returns the current bucket-array length.
func (m *Map[K, V]) BucketCount() int {
	return m.c.bucketCount()
}

// LoadFactor returns Size()/BucketCount().
func (m *Map[K, V]) LoadFactor() float64 {
	return m.c.loadFactor()
}

// MaxLoadFactor returns the threshold that triggers automatic growth.
func (m *Map[K, V]) MaxLoadFactor() float64 {
	return m.c.getMaxLoadFactor()
}

// SetMaxLoadFactor changes the automatic-growth threshold. Non-positive
// values are ignored.
func (m *Map[K, V]) SetMaxLoadFactor(f float64) {
	m.c.setMaxLoadFactor(f)
}

// Stats returns a diagnostic snapshot of m's internal structure. See
// stats.go.
func (m *Map[K, V]) Stats() *Stats {
	return m.c.stats()
}

// MapOne returns f(value) if key is present, or def otherwise. A
// package-level function, not a method, because Go forbids a method
// from introducing its own type parameter beyond those of its receiver.
func MapOne[K comparable, V any, R any](m *Map[K, V], key K, f func(V) R, def R) R {
	return mapOne(m.c, key, f, def)
}

// MapReduce computes f(key, value) for every entry of m and folds the
// results with combine, seeded with zero, using one accumulator per
// worker during the parallel traversal. A package-level function for
// the same reason as MapOne.
func MapReduce[K comparable, V any, R any](m *Map[K, V], f func(K, V) R, combine func(R, R) R, zero R) R {
	return mapReduce(m.c, f, combine, zero)
}
