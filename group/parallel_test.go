package group

import (
	"fmt"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fanoutSource(parents, childrenPer int) []*row {
	var source []*row
	id := 1
	for p := 1; p <= parents; p++ {
		source = append(source, &row{id: id, pid: 0, root: true})
		id++
	}
	for p := 1; p <= parents; p++ {
		for c := 0; c < childrenPer; c++ {
			source = append(source, &row{id: id, pid: p})
			id++
		}
	}
	return source
}

func TestBuildParallelMatchesSequentialMembership(t *testing.T) {
	source := fanoutSource(7, 53)
	sequential := Build(source, rowParent, rowIsRoot)
	for _, workers := range []int{2, 3, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			parallel := BuildParallel(source, rowParent, rowIsRoot, workers)
			require.Len(t, parallel, len(sequential))
			for pid, run := range sequential {
				// Cross-partition order is unspecified; membership per key
				// must match exactly.
				tassert.ElementsMatch(t, ids(run), ids(parallel.Children(pid)))
			}
		})
	}
}

func TestBuildParallelExcludesRoots(t *testing.T) {
	source := fanoutSource(4, 10)
	idx := BuildParallel(source, rowParent, rowIsRoot, 4)
	tassert.Nil(t, idx.Children(0))
}

func TestBuildParallelSingleRecordFallsBackToSequential(t *testing.T) {
	source := []*row{{id: 2, pid: 1}}
	// workers is clamped to the source length; a single effective worker
	// takes the sequential path.
	idx := BuildParallel(source, rowParent, rowIsRoot, 16)
	tassert.Equal(t, []int{2}, ids(idx.Children(1)))
}

func TestBuildParallelDefaultWorkerCount(t *testing.T) {
	source := fanoutSource(3, 40)
	idx := BuildParallel(source, rowParent, rowIsRoot, 0)
	total := 0
	for _, run := range idx {
		total += len(run)
	}
	tassert.Equal(t, 3*40, total)
}

func TestBuildParallelEmptySource(t *testing.T) {
	idx := BuildParallel(nil, rowParent, rowIsRoot, 4)
	require.NotNil(t, idx)
	tassert.Empty(t, idx)
}
