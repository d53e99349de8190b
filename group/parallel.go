package group

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BuildParallel buckets source like Build, scanning disjoint contiguous
// partitions on worker goroutines. Each worker fills a partition-local
// index; the local indexes are merged sequentially afterwards, so a single
// key's get-or-create-and-append never races.
//
// The contract guarantees per-key atomicity only. Bucket order across
// partitions is unspecified; callers needing deterministic child order use
// Build instead.
//
// workers <= 0 selects GOMAXPROCS. Small inputs fall back to the
// sequential scan.
func BuildParallel[T comparable, F any](source []F, parentID func(F) T, isRoot func(F) bool, workers int) Index[T, F] {
	assert(parentID != nil, "group.BuildParallel requires a parent-id accessor")
	assert(isRoot != nil, "group.BuildParallel requires a root predicate")
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(source) {
		workers = len(source)
	}
	if workers <= 1 {
		return Build(source, parentID, isRoot)
	}
	locals := make([]Index[T, F], workers)
	var g errgroup.Group
	stride := (len(source) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * stride
		hi := min(lo+stride, len(source))
		if lo >= hi {
			locals[w] = Index[T, F]{}
			continue
		}
		g.Go(func() error {
			locals[w] = Build(source[lo:hi], parentID, isRoot)
			return nil
		})
	}
	// Workers never fail; the group is used for joining only.
	_ = g.Wait()
	idx := locals[0]
	for _, local := range locals[1:] {
		idx.merge(local)
	}
	return idx
}
