package comap

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is the sentinel every CapacityExceededError matches
// through its Is method, for callers that only need
// errors.Is(err, ErrCapacityExceeded) rather than the requested size.
var ErrCapacityExceeded = errors.New("comap: requested capacity exceeds planner range")

// CapacityExceededError reports that the bucket capacity planner could
// not represent a requested minimum bucket count, even after applying
// its one large-prime multiplier. It surfaces from Reserve, and from
// Insert/Upsert/UpsertWithDefault when the automatic growth policy would
// need a table the planner cannot represent. In both cases the bucket
// array is left as it was; after a failed automatic growth the entry
// written by Insert/Upsert/UpsertWithDefault is still present.
type CapacityExceededError struct {
	Requested uint64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("comap: requested %d buckets exceeds planner range", e.Requested)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
