package comap

import "hash/maphash"

// Hasher produces an unsigned hash for a key. The container is
// parametric over the hasher; any deterministic, well-distributed
// function works, including one that is not stateless across processes.
type Hasher[K comparable] func(key K) uint64

// defaultHasher returns a seeded maphash-backed hasher, used whenever a
// Map or Set is constructed without an explicit Hasher: seed once at
// construction with maphash.MakeSeed, then hash comparable keys with
// maphash.Comparable.
func defaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}
