package phantoms4d

import (
	"runtime"
	"sync"
)

// resolveWorkers turns a requested worker count into a usable one (0 ⇒ NumCPU).
func resolveWorkers(requested int) int {
	workers := requested
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

func workerCount(requested, items int) int {
	workers := resolveWorkers(requested)
	if workers > items {
		workers = items
	}
	return workers
}

// splitWork runs fn over [0,n) cut into contiguous blocks, one goroutine per
// block (evenly, with the remainder spread over the first workers). Blocks are
// disjoint, so fn may write its own output positions without locking.
func splitWork(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers = workerCount(workers, n)
	if workers == 1 {
		fn(0, n)
		return
	}
	per, rem := n/workers, n%workers
	var wg sync.WaitGroup
	lo := 0
	for w := 0; w < workers; w++ {
		cnt := per
		if w < rem {
			cnt++
		}
		if cnt == 0 {
			continue
		}
		hi := lo + cnt
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
		lo = hi
	}
	wg.Wait()
}
