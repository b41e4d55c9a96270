package comap

// withSlot locates the slot that either holds key's entry or is the
// trailing empty slot of its chain, and invokes handler on a pointer to
// that slot — a mutable reference the handler can use to link,
// overwrite, or unlink the entry.
//
// slot is always the address of either a bucketTable.buckets element or
// some node's next field, so handler can relink the chain simply by
// assigning *slot.
//
// A concurrent rehash is detected as a pointer-identity mismatch on the
// atomic table pointer: if a new bucketTable was installed between the
// snapshot and the lock acquisition, tbl no longer matches
// c.tbl.Load(), and the access is retried from scratch against the new
// table. The segment lock is released via defer so that a handler that
// panics still unwinds with the lock free, rather than leaving it held
// forever against bulk/rehash callers that acquire every segment lock.
func (c *core[K, V]) withSlot(key K, handler func(slot **node[K, V], found bool)) {
	h := c.hasher(key)
	for {
		tbl := c.tbl.Load()
		n := len(tbl.buckets)
		bucketID := int(h % uint64(n))
		segID := c.segmentIndex(bucketID)

		lock := &c.segmentLocks[segID]
		lock.Lock()
		if c.tbl.Load() != tbl {
			lock.Unlock()
			continue
		}

		func() {
			defer lock.Unlock()
			slot := &tbl.buckets[bucketID]
			for *slot != nil && (*slot).key != key {
				slot = &(*slot).next
			}
			handler(slot, *slot != nil)
		}()
		return
	}
}

// insert creates a new entry for key if absent, or overwrites the
// existing value if present, then triggers automatic growth if the load
// factor threshold is now crossed.
func (c *core[K, V]) insert(key K, value V) error {
	grew := false
	c.withSlot(key, func(slot **node[K, V], found bool) {
		if found {
			(*slot).value = value
			return
		}
		*slot = &node[K, V]{key: key, value: value}
		c.nKeys.Add(1)
		grew = true
	})
	if grew {
		return c.maybeGrow()
	}
	return nil
}

// upsert applies mutate to key's existing value, or to a newly linked
// value if key is absent. def is nil for the default-construct form;
// non-nil, it seeds the newly linked value before mutate runs.
func (c *core[K, V]) upsert(key K, mutate func(*V), def *V) error {
	grew := false
	c.withSlot(key, func(slot **node[K, V], found bool) {
		if found {
			mutate(&(*slot).value)
			return
		}
		n := &node[K, V]{key: key}
		if def != nil {
			n.value = *def
		}
		mutate(&n.value)
		*slot = n
		c.nKeys.Add(1)
		grew = true
	})
	if grew {
		return c.maybeGrow()
	}
	return nil
}

// remove unlinks key's node by splicing its successor into the vacated
// slot. remove never triggers a rehash.
func (c *core[K, V]) remove(key K) {
	c.withSlot(key, func(slot **node[K, V], found bool) {
		if found {
			*slot = (*slot).next
			c.nKeys.Add(-1)
		}
	})
}

// contains reports whether key is present.
func (c *core[K, V]) contains(key K) bool {
	var present bool
	c.withSlot(key, func(_ **node[K, V], found bool) {
		present = found
	})
	return present
}

// getOrDefault returns key's value, or def if key is absent.
func (c *core[K, V]) getOrDefault(key K, def V) V {
	result := def
	c.withSlot(key, func(slot **node[K, V], found bool) {
		if found {
			result = (*slot).value
		}
	})
	return result
}

// applyOne invokes handler on key's value iff present.
func (c *core[K, V]) applyOne(key K, handler func(V)) {
	c.withSlot(key, func(slot **node[K, V], found bool) {
		if found {
			handler((*slot).value)
		}
	})
}

// mapOne returns f(value) if key is present, or def otherwise. It is a
// free function, not a core method, because Go methods cannot take
// their own additional type parameters beyond the receiver's.
func mapOne[K comparable, V any, R any](c *core[K, V], key K, f func(V) R, def R) R {
	result := def
	c.withSlot(key, func(slot **node[K, V], found bool) {
		if found {
			result = f((*slot).value)
		}
	})
	return result
}

// maybeGrow checks the load factor after the handler has applied its
// mutation, using the (possibly slightly stale) atomic key counter; the
// subsequent rehash acquires every segment lock before observing the
// count authoritatively, so a stale read here only costs an extra
// growth check, never correctness.
func (c *core[K, V]) maybeGrow() error {
	tbl := c.tbl.Load()
	n := len(tbl.buckets)
	maxLF := c.getMaxLoadFactor()
	keys := c.nKeys.Load()
	if float64(keys) < maxLF*float64(n) {
		return nil
	}
	target := uint64(float64(keys)/maxLF) + 1
	return c.reserve(target)
}
