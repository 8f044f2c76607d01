// Package workerpool constructs and owns the single process-wide worker
// pool that spec.md §5 requires: "exactly one global pool of OS threads
// shared by every stage that parallelizes; no stage spawns its own
// goroutine pool." Only the selector's per-edge map-reduce submits work to
// it; every other stage, Or-opt included, runs on the calling goroutine.
//
// Grounded on github.com/ajroetker/go-highway/hwy/contrib/workerpool, the
// same package the teacher pack's parallel matmul code uses for
// ParallelForAtomic-style fan-out over independent index ranges.
package workerpool

import (
	"runtime"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// Pool wraps the single *workerpool.Pool constructed for the lifetime of a
// solve (pipeline.Run builds exactly one per run and threads it through the
// expansion driver and RELP).
type Pool struct {
	inner *workerpool.Pool
}

// New constructs a Pool with the given number of workers. workers <= 0
// falls back to runtime.GOMAXPROCS(0).
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{inner: workerpool.New(workers)}
}

// NumWorkers reports the pool's worker count.
func (p *Pool) NumWorkers() int { return p.inner.NumWorkers() }

// ParallelForAtomic runs fn(idx) for idx in [0, n) across the pool's
// workers, blocking until every call completes. fn must be safe to call
// concurrently from distinct idx values; coordination across idx (shared
// accumulators, etc.) is the caller's responsibility and is typically done
// via atomics or per-idx output slots (spec.md §5 map-reduce pattern).
func (p *Pool) ParallelForAtomic(n int, fn func(idx int)) {
	p.inner.ParallelForAtomic(n, fn)
}

// Close releases the pool's worker goroutines.
func (p *Pool) Close() {
	p.inner.Close()
}
