/*
Package arbor converts between flat record sequences and linked trees.

Applications frequently model hierarchical data—organization charts,
category trees, menu structures—as denormalized rows carrying an id and a
parent id. Package arbor assembles such a flat sequence into a tree, walks
trees depth-first with pre- and post-order callbacks, and flattens trees
back into filtered flat sequences.

The package never inspects record fields itself. Callers supply small
accessor functions (id, parent id, root predicate, children attachment) in a
Config, and arbor stays agnostic of the record shape:

	type Dept struct {
		ID, ParentID int
		Subs         []*Dept
	}

	tree, err := arbor.FromSlice(depts, arbor.Config[*Dept, int]{
		ID:          func(d *Dept) int { return d.ID },
		ParentID:    func(d *Dept) int { return d.ParentID },
		IsRoot:      func(d *Dept) bool { return d.ParentID == 0 },
		SetChildren: func(d *Dept, subs []*Dept) { d.Subs = subs },
	})

Assembly is a pure function of the input sequence and the accessors: records
are owned by the caller and are mutated only through SetChildren, exactly
once per visited node. Grouping by parent id may optionally run on multiple
worker goroutines over disjoint partitions of the source; see Config.Workers
and package group.

Cyclic parent-id chains are a caller contract violation and make the default
assembly recurse forever. Config.MaxDepth opts into a depth guard that fails
with ErrCycleDetected instead.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arbor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
