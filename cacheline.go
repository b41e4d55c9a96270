package comap

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is used to pad the segment lock array so that two
// adjacent segment mutexes never share a cache line under contention.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

const mutexSize = unsafe.Sizeof(sync.Mutex{})

// padding rounds a sync.Mutex out to a cache line. On every platform
// comap targets CacheLineSize comfortably exceeds mutexSize; the
// subtraction is left unguarded because both operands are compile-time
// constants on the build target, not runtime-dependent values.
const padding = CacheLineSize - mutexSize

// paddedMutex is a sync.Mutex padded out to a cache line. Used for the
// segment and rehashing-segment lock arrays, whose elements are
// contended independently and would otherwise false-share across
// goroutines pinned to different cores.
type paddedMutex struct {
	sync.Mutex
	_ [padding]byte
}
