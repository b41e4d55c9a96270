package comap

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSetBasic(t *testing.T) {
	s := NewSet[string](nil)
	if s.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", s.Size())
	}
	if err := s.Add("aa"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("bbb"); err != nil {
		t.Fatal(err)
	}
	if s.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", s.Size())
	}
	if !s.Contains("aa") || !s.Contains("bbb") {
		t.Fatalf("expected aa and bbb present")
	}
	if s.Contains("zz") {
		t.Fatalf("expected zz absent")
	}

	// Adding an already-present key is a no-op, not a duplicate member.
	if err := s.Add("aa"); err != nil {
		t.Fatal(err)
	}
	if s.Size() != 2 {
		t.Fatalf("Size() = %d after duplicate Add, want 2", s.Size())
	}
}

func TestSetRemove(t *testing.T) {
	s := NewSet[int](nil)
	_ = s.Add(1)
	_ = s.Add(2)
	s.Remove(1)
	if s.Contains(1) {
		t.Fatalf("expected 1 to be absent after Remove")
	}
	if !s.Contains(2) {
		t.Fatalf("expected 2 to still be present")
	}
	if s.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", s.Size())
	}
}

func TestSetGrowthOnAdd(t *testing.T) {
	s := NewSet[int](nil)
	for i := 0; i < 200; i++ {
		if err := s.Add(i); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 200; i++ {
		if !s.Contains(i) {
			t.Fatalf("expected %d to be present", i)
		}
	}
	if s.BucketCount() < 200 {
		t.Fatalf("BucketCount() = %d, want >= 200", s.BucketCount())
	}
}

func TestSetApplyAllMatchesSize(t *testing.T) {
	s := NewSet[int](nil)
	for i := 0; i < 150; i++ {
		_ = s.Add(i)
	}
	var count atomic.Int64
	s.ApplyAll(func(_ int) { count.Add(1) })
	if int(count.Load()) != s.Size() {
		t.Fatalf("ApplyAll visited %d members, Size() = %d", count.Load(), s.Size())
	}
}

func TestSetMapReduceCount(t *testing.T) {
	s := NewSet[string](nil)
	for _, k := range []string{"aa", "ab", "ac", "ad", "ae", "ba", "bb"} {
		_ = s.Add(k)
	}
	got := SetMapReduce(s, func(k string) int {
		if k[0] == 'a' {
			return 1
		}
		return 0
	}, sumInt, 0)
	if got != 5 {
		t.Fatalf("SetMapReduce prefix count = %d, want 5", got)
	}
}

func TestSetClear(t *testing.T) {
	s := NewSet[int](nil)
	for i := 0; i < 100; i++ {
		_ = s.Add(i)
	}
	s.Clear()
	if s.Size() != 0 {
		t.Fatalf("Size() = %d after Clear, want 0", s.Size())
	}
	if s.Contains(0) {
		t.Fatalf("expected 0 to be absent after Clear")
	}
}

func TestSetConcurrentAdd(t *testing.T) {
	const n = 10000
	s := NewSet[int](nil)

	var wg sync.WaitGroup
	workers := 8
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if err := s.Add(i); err != nil {
					t.Error(err)
				}
			}
		}(lo, hi)
	}
	wg.Wait()

	if s.Size() != n {
		t.Fatalf("Size() = %d, want %d", s.Size(), n)
	}
	for i := 0; i < n; i++ {
		if !s.Contains(i) {
			t.Fatalf("expected %d to be present after concurrent Add", i)
		}
	}
}

func TestSetCapacityPlannerIsDistinctFromMap(t *testing.T) {
	if setCapacityPlanner.multiplier == mapCapacityPlanner.multiplier {
		t.Fatalf("set and map planners should use different multipliers")
	}
	if len(setCapacityPlanner.primes) == len(mapCapacityPlanner.primes) {
		t.Fatalf("set and map planners should use differently sized prime tables")
	}
}
