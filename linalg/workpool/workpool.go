// Package workpool provides the barrier-synchronous fan-out primitive that
// every block-recursive operation in linalg uses to split a row-block range
// across a fixed worker budget. It is a thin wrapper over
// golang.org/x/sync/errgroup: every call to Do blocks until all of its
// chunks have finished.
package workpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Do splits [0, n) into at most workers contiguous chunks and runs fn(lo, hi)
// for each chunk concurrently, returning the first error any chunk reports.
// Do returns nil immediately if n <= 0.
func Do(workers, n int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	g, _ := errgroup.WithContext(context.Background())
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			return fn(lo, hi)
		})
	}
	return g.Wait()
}

// Threads rounds want down to the nearest power of two not exceeding limit.
// Threads never returns less than 1.
func Threads(want, limit int) int {
	if limit < 1 {
		limit = 1
	}
	if want > limit {
		want = limit
	}
	if want < 1 {
		want = 1
	}
	p := 1
	for p*2 <= want {
		p *= 2
	}
	return p
}
