package comap

// Set is a concurrent key-only associative container: the degenerate
// case of the shared design where the value type is unit. Its zero
// value is not ready for use; construct one with NewSet.
type Set[K comparable] struct {
	c *core[K, struct{}]
}

// NewSet constructs an empty Set. hasher may be nil, in which case a
// seeded hash/maphash.Comparable hasher is used (see hash.go). The set
// variant uses its own, smaller capacity planner table
// (setCapacityPlanner).
func NewSet[K comparable](hasher Hasher[K], options ...Option) *Set[K] {
	return &Set[K]{c: newCore[K, struct{}](hasher, setCapacityPlanner, options...)}
}

// Add inserts key if absent; a no-op if already present.
func (s *Set[K]) Add(key K) error {
	return s.c.insert(key, struct{}{})
}

// Remove unlinks key if present. It never triggers a rehash.
func (s *Set[K]) Remove(key K) {
	s.c.remove(key)
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	return s.c.contains(key)
}

// ApplyAll invokes handler on every member key.
func (s *Set[K]) ApplyAll(handler func(K)) {
	s.c.applyAll(func(k K, _ struct{}) {
		handler(k)
	})
}

// Reserve grows the bucket array to at least minBuckets, returning
// CapacityExceededError if the planner cannot represent that size. It
// never shrinks the table.
func (s *Set[K]) Reserve(minBuckets int) error {
	return s.c.reserve(uint64(minBuckets))
}

// Clear removes every member and resets the bucket array to its initial
// size — the only operation that reduces BucketCount.
func (s *Set[K]) Clear() {
	s.c.clear()
}

// Size returns the number of members.
func (s *Set[K]) Size() int {
	return s.c.size()
}

// BucketCount returns the current bucket-array length.
func (s *Set[K]) BucketCount() int {
	return s.c.bucketCount()
}

// LoadFactor returns Size()/BucketCount().
func (s *Set[K]) LoadFactor() float64 {
	return s.c.loadFactor()
}

// MaxLoadFactor returns the threshold that triggers automatic growth.
func (s *Set[K]) MaxLoadFactor() float64 {
	return s.c.getMaxLoadFactor()
}

// SetMaxLoadFactor changes the automatic-growth threshold. Non-positive
// values are ignored.
func (s *Set[K]) SetMaxLoadFactor(f float64) {
	s.c.setMaxLoadFactor(f)
}

// Stats returns a diagnostic snapshot of s's internal structure.
func (s *Set[K]) Stats() *Stats {
	return s.c.stats()
}

// SetMapReduce computes f(key) for every member of s and folds the
// results with combine, seeded with zero, one accumulator per worker
// during the parallel traversal. A package-level function, not a
// method, because Go forbids a method from introducing its own type
// parameter beyond those of its receiver.
func SetMapReduce[K comparable, R any](s *Set[K], f func(K) R, combine func(R, R) R, zero R) R {
	return mapReduce(s.c, func(k K, _ struct{}) R { return f(k) }, combine, zero)
}
