package linalg

import "sync"

const pooledFloatSize = 4096

var floatPool = sync.Pool{
	New: func() interface{} {
		return make([]float64, pooledFloatSize)
	},
}

// Arena is a per-worker scratch allocator handed to the block-recursive
// operations so that the off-diagonal update in the triangular-inverse
// recursion does not need a process-wide scratch array keyed by thread id.
// Each goroutine spawned by workpool.Do should own its own Arena; Arena
// itself holds no lock and is not safe for concurrent use.
type Arena struct {
	tile1 []float64
	tile2 []float64
}

// NewArena returns an Arena ready to serve scratch buffers.
func NewArena() *Arena {
	return &Arena{}
}

// scratch returns a []float64 of length n: tile1 if it is large enough
// (taken from the shared float pool on first use), otherwise tile2, which
// is allocated directly when too small. Callers must not hold onto the
// slice past the call that requested it: the next scratch(...) call with
// the same tile may overwrite it.
func (a *Arena) scratch(n int) []float64 {
	if cap(a.tile1) >= n {
		return a.tile1[:n]
	}
	if a.tile1 == nil {
		a.tile1 = useFloats(floatPool.Get().([]float64), n)
		return a.tile1[:n]
	}
	if cap(a.tile2) >= n {
		return a.tile2[:n]
	}
	a.tile2 = useFloats(a.tile2, n)
	return a.tile2[:n]
}

// Release returns tile1 to the shared pool; tile2 is left to the garbage
// collector. Call it once the arena's owning goroutine is done with it.
func (a *Arena) Release() {
	if cap(a.tile1) > 0 {
		floatPool.Put(a.tile1[:cap(a.tile1)])
		a.tile1 = nil
	}
}

func useFloats(w []float64, n int) []float64 {
	if cap(w) >= n {
		return w[:n]
	}
	return make([]float64, n)
}
