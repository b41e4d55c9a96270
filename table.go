package comap

import (
	"math"
	"sync/atomic"
)

// segmentsPerWorker fixes the number of segment locks allotted per
// worker: n_segments = max_workers * segmentsPerWorker.
const segmentsPerWorker = 7

// core is the shared engine behind both Map[K,V] and Set[K]; a Set is
// the degenerate case core[K, struct{}]. It owns the bucket array, the
// two disjoint lock arrays, and the container's scalar state.
type core[K comparable, V any] struct {
	tbl atomic.Pointer[bucketTable[K, V]]

	// segmentLocks guard reads and in-place mutation of the current
	// bucket array during point access and bulk traversal.
	segmentLocks []paddedMutex
	// rehashingSegmentLocks serialise writers into the *new* bucket
	// array during rehash, disjoint from segmentLocks so the rehash
	// engine (which already holds every segmentLocks entry) cannot
	// deadlock against its own parallel workers.
	rehashingSegmentLocks []paddedMutex

	nSegments int

	nKeys atomic.Int64

	// maxLoadFactor is stored as float64 bits behind an atomic so
	// LoadFactor/MaxLoadFactor/SetMaxLoadFactor never race, even though
	// callers may observe a momentarily stale value under concurrent
	// mutation.
	maxLoadFactorBits atomic.Uint64

	hasher     Hasher[K]
	planner    capacityPlanner
	maxWorkers int
}

func newCore[K comparable, V any](hasher Hasher[K], planner capacityPlanner, opts ...Option) *core[K, V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if hasher == nil {
		hasher = defaultHasher[K]()
	}

	nSegments := cfg.maxWorkers * segmentsPerWorker
	if nSegments < 1 {
		nSegments = segmentsPerWorker
	}

	c := &core[K, V]{
		segmentLocks:          make([]paddedMutex, nSegments),
		rehashingSegmentLocks: make([]paddedMutex, nSegments),
		nSegments:             nSegments,
		hasher:                hasher,
		planner:               planner,
		maxWorkers:            cfg.maxWorkers,
	}
	c.setMaxLoadFactor(cfg.maxLoadFactor)
	c.tbl.Store(newBucketTable[K, V](int(planner.initialBuckets())))

	if cfg.sizeHint > 0 {
		// Presizing failure at construction is not recoverable by the
		// caller (there is no error return from a constructor), so an
		// unrepresentable size hint is silently ignored rather than
		// panicking: the table keeps its initial bucket count.
		_ = c.reserve(uint64(cfg.sizeHint))
	}
	return c
}

func (c *core[K, V]) segmentIndex(bucketID int) int {
	return bucketID % c.nSegments
}

func (c *core[K, V]) loadFactor() float64 {
	tbl := c.tbl.Load()
	n := len(tbl.buckets)
	if n == 0 {
		return 0
	}
	return float64(c.nKeys.Load()) / float64(n)
}

func (c *core[K, V]) getMaxLoadFactor() float64 {
	return math.Float64frombits(c.maxLoadFactorBits.Load())
}

func (c *core[K, V]) setMaxLoadFactor(f float64) {
	if f <= 0 {
		return
	}
	c.maxLoadFactorBits.Store(math.Float64bits(f))
}

func (c *core[K, V]) size() int {
	return int(c.nKeys.Load())
}

func (c *core[K, V]) bucketCount() int {
	return len(c.tbl.Load().buckets)
}
