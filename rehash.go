package comap

// reserve is the rehash engine, invoked directly by Reserve and
// indirectly by maybeGrow after an insert crosses the load factor
// threshold.
func (c *core[K, V]) reserve(minBuckets uint64) error {
	candidate, err := c.planner.plan(minBuckets)
	if err != nil {
		return err
	}

	for i := range c.segmentLocks {
		c.segmentLocks[i].Lock()
	}
	defer func() {
		for i := range c.segmentLocks {
			c.segmentLocks[i].Unlock()
		}
	}()

	old := c.tbl.Load()
	if candidate <= uint64(len(old.buckets)) {
		// The table never shrinks via rehash.
		return nil
	}

	newTbl := newBucketTable[K, V](int(candidate))
	c.rehashTo(old, newTbl)
	c.tbl.Store(newTbl)
	return nil
}

// rehashTo moves every entry from old into newTbl, fanned out across
// goroutines under the secondary (rehashing) lock array: each worker
// walks one contiguous range of old buckets, and for every node
// relocates it by computing its new bucket and segment, acquiring only
// the *rehashing* lock for that segment (never a primary segment lock,
// which this goroutine's caller already holds for every segment, and
// re-acquiring would deadlock), splicing the node onto the new chain's
// head, and clearing nothing else — node.next is overwritten with the
// new chain's previous head in the same assignment that links it in, so
// it never drags its old tail into the new table.
//
// The walk captures next before relinking the current node (see
// entry.go's comment on node.next), so a single iterative forward pass
// suffices; nothing recursive or stack-based is needed to keep the rest
// of an old chain reachable while one of its nodes moves.
func (c *core[K, V]) rehashTo(old, newTbl *bucketTable[K, V]) {
	newLen := uint64(len(newTbl.buckets))
	c.forEachChunk(len(old.buckets), func(_ int, lo, hi int) {
		for i := lo; i < hi; i++ {
			n := old.buckets[i]
			for n != nil {
				next := n.next

				h := c.hasher(n.key)
				bucketID := int(h % newLen)
				segID := c.segmentIndex(bucketID)

				lock := &c.rehashingSegmentLocks[segID]
				lock.Lock()
				n.next = newTbl.buckets[bucketID]
				newTbl.buckets[bucketID] = n
				lock.Unlock()

				n = next
			}
		}
	})
}

// clear removes every entry and resets the table to the planner's
// smallest entry — the only operation that reduces the bucket count.
func (c *core[K, V]) clear() {
	for i := range c.segmentLocks {
		c.segmentLocks[i].Lock()
	}
	defer func() {
		for i := range c.segmentLocks {
			c.segmentLocks[i].Unlock()
		}
	}()
	c.tbl.Store(newBucketTable[K, V](int(c.planner.initialBuckets())))
	c.nKeys.Store(0)
}
