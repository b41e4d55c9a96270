package comap

import "sort"

// capacityPlanner draws an admissible bucket count from a fixed sorted
// table of primes, multiplying the request by one large prime factor if
// it would otherwise exceed the table's range.
type capacityPlanner struct {
	primes     []uint64
	multiplier uint64
}

// mapCapacityPlanner is the Map variant's planner: a 29-entry prime table
// topping out at 2147483647, with a multiplier of 817504253 allowing the
// effective range to exceed 2*10^9.
var mapCapacityPlanner = capacityPlanner{
	primes: []uint64{
		5, 11, 23, 47, 97, 199, 409, 823,
		1741, 3469, 6949, 14033, 28411, 57557, 116731, 236897,
		480881, 976369, 1982627, 4026031, 8175383, 16601593, 33712729, 68460391,
		139022417, 282312799, 573292817, 1164186217, 2147483647,
	},
	multiplier: 817504253,
}

// setCapacityPlanner is the Set variant's planner: a smaller 20-entry
// table with a different multiplier. All entries are prime except 15858,
// which is also the multiplier.
var setCapacityPlanner = capacityPlanner{
	primes: []uint64{
		11, 17, 29, 47, 79, 127, 211,
		337, 547, 887, 1433, 2311, 3739, 6053,
		9791, 15858, 25667, 41539, 67213, 104729,
	},
	multiplier: 15858,
}

// plan returns the smallest table-representable (optionally
// multiplier-scaled) prime count c >= minBuckets, or CapacityExceededError
// if minBuckets cannot be represented even after one multiplication.
func (p capacityPlanner) plan(minBuckets uint64) (uint64, error) {
	if minBuckets == 0 {
		minBuckets = 1
	}
	last := p.primes[len(p.primes)-1]
	remaining := minBuckets
	scale := uint64(1)
	if remaining > last {
		remaining = (remaining + p.multiplier - 1) / p.multiplier
		scale = p.multiplier
	}
	if remaining > last {
		return 0, &CapacityExceededError{Requested: minBuckets}
	}
	idx := sort.Search(len(p.primes), func(i int) bool {
		return p.primes[i] >= remaining
	})
	return scale * p.primes[idx], nil
}

// initialBuckets returns the planner's smallest table entry, used as the
// container's starting bucket count so that the bucket count is always
// a value the planner itself could return, from construction onward,
// not just after the first rehash.
func (p capacityPlanner) initialBuckets() uint64 {
	return p.primes[0]
}
