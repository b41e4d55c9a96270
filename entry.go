package comap

// node is one entry in a bucket chain: a key, its value, and a link to
// the next entry hashing into the same bucket. A node exists from the
// moment it is linked into some bucket's chain to the moment it is
// unlinked; it is never observed unlinked by any handler.
//
// next is an ordinary pointer, not an owning one: the garbage collector
// keeps the rest of a chain alive for as long as something still points
// into it, so moving a node out of its old chain during rehash never
// truncates the nodes still ahead of it. rehashTo exploits this by
// capturing next before relinking the current node.
type node[K comparable, V any] struct {
	key   K
	value V
	next  *node[K, V]
}

// bucketTable is one generation of the bucket array. Point-access
// handlers mutate its elements in place under their segment lock; a
// rehash never resizes it but builds an entirely new bucketTable, moves
// every node into it, and swaps it in atomically. A reader that loaded
// an older bucketTable via core.tbl.Load detects the swap by pointer
// identity (see withSlot) and retries against the new one.
type bucketTable[K comparable, V any] struct {
	buckets []*node[K, V]
}

func newBucketTable[K comparable, V any](n int) *bucketTable[K, V] {
	return &bucketTable[K, V]{buckets: make([]*node[K, V], n)}
}
