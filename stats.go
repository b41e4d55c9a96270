package comap

import (
	"fmt"
	"strings"
	"sync"
)

// Stats is a diagnostic snapshot of a Map or Set's internal structure.
//
// Warning: intended for diagnostics, not production control flow; its
// shape may change between minor releases.
type Stats struct {
	// BucketCount is the current length of the bucket array.
	BucketCount int
	// Size is the exact number of entries, counted by walking every
	// chain under every segment lock.
	Size int
	// Counter is the number of entries according to the internal
	// atomic counter. Under concurrent modification this may briefly
	// differ from Size.
	Counter int
	// EmptyBuckets is the number of buckets with no chained entries.
	EmptyBuckets int
	// MinChainLength and MaxChainLength are the shortest and longest
	// observed bucket chains.
	MinChainLength int
	MaxChainLength int
}

func (c *core[K, V]) stats() *Stats {
	stats := &Stats{
		BucketCount: c.bucketCount(),
		Counter:     c.size(),
	}
	minSeen := -1
	var mu sync.Mutex

	c.bulk(func(_ int, tbl *bucketTable[K, V], lo, hi int) {
		localMin, localMax := -1, -1
		localSize, localEmpty := 0, 0
		for i := lo; i < hi; i++ {
			length := 0
			for n := tbl.buckets[i]; n != nil; n = n.next {
				length++
			}
			localSize += length
			if length == 0 {
				localEmpty++
			}
			if localMin == -1 || length < localMin {
				localMin = length
			}
			if length > localMax {
				localMax = length
			}
		}

		mu.Lock()
		defer mu.Unlock()
		stats.Size += localSize
		stats.EmptyBuckets += localEmpty
		if localMin != -1 && (minSeen == -1 || localMin < minSeen) {
			minSeen = localMin
		}
		if localMax > stats.MaxChainLength {
			stats.MaxChainLength = localMax
		}
	})

	if minSeen != -1 {
		stats.MinChainLength = minSeen
	}
	return stats
}

// String renders the snapshot for logs and test failure messages.
func (s *Stats) String() string {
	var sb strings.Builder
	sb.WriteString("Stats{\n")
	fmt.Fprintf(&sb, "  BucketCount:    %d\n", s.BucketCount)
	fmt.Fprintf(&sb, "  Size:           %d\n", s.Size)
	fmt.Fprintf(&sb, "  Counter:        %d\n", s.Counter)
	fmt.Fprintf(&sb, "  EmptyBuckets:   %d\n", s.EmptyBuckets)
	fmt.Fprintf(&sb, "  MinChainLength: %d\n", s.MinChainLength)
	fmt.Fprintf(&sb, "  MaxChainLength: %d\n", s.MaxChainLength)
	sb.WriteString("}\n")
	return sb.String()
}
