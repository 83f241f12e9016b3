// Package parallel splits index ranges across goroutines for batch
// evaluation and accuracy sweeps.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultThreshold is the item count below which work stays on the calling
// goroutine. A single table evaluation costs tens of nanoseconds, so the
// fan-out only pays off for large batches.
const DefaultThreshold = 4096

// Workers returns the number of goroutines used for n items.
func Workers(n int) int {
	w := runtime.GOMAXPROCS(0)
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// chunks calls fn with contiguous [start, end) ranges covering [0, items),
// one per worker.
func chunks(items int, fn func(chunk, start, end int)) {
	workers := Workers(items)
	size := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * size
		end := min(start+size, items)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(c, s, e int) {
			defer wg.Done()
			fn(c, s, e)
		}(i, start, end)
	}
	wg.Wait()
}

// Parallelize runs fn over [0, items) split into one range per worker and
// waits for all of them.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	chunks(items, func(_, start, end int) { fn(start, end) })
}

// ParallelizeWithThreshold runs fn sequentially as fn(0, items) when items
// does not exceed threshold and in parallel otherwise.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// ParallelizeErr is ParallelizeWithThreshold for functions that can fail.
// Every range runs to completion; the returned error is the one from the
// lowest range that failed, so the result does not depend on scheduling.
func ParallelizeErr(items, threshold int, fn func(start, end int) error) error {
	if items <= 0 {
		return nil
	}
	if items <= threshold {
		return fn(0, items)
	}

	errs := make([]error, Workers(items))
	chunks(items, func(c, start, end int) {
		errs[c] = fn(start, end)
	})
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
