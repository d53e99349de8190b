package arbor

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/arbor/group"
)

// FromSlice converts a flat record slice into a tree.
//
// The source is partitioned into roots and non-roots by the config's root
// predicate, the non-roots are bucketed by parent id (on worker goroutines
// when cfg.Workers > 1), and children are wired recursively from the roots
// down. FromSlice returns the root records, in source order, with their
// subtrees attached.
//
// A nil or empty source yields an empty tree without any callback being
// invoked.
func FromSlice[F any, T comparable](source []F, cfg Config[F, T]) ([]F, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	if len(source) == 0 {
		return nil, nil
	}
	if cfg.Workers > 1 {
		roots := partitionRoots(source, cfg.IsRoot)
		idx := group.BuildParallel(source, cfg.ParentID, cfg.IsRoot, cfg.Workers)
		return Assemble(roots, idx, cfg)
	}
	return FromSeq(slices.Values(source), cfg)
}

// FromSeq converts a lazily produced record sequence into a tree. The
// sequence is consumed exactly once; grouping and root partitioning happen
// in the same pass. See FromSlice for the resulting tree's shape.
func FromSeq[F any, T comparable](source iter.Seq[F], cfg Config[F, T]) ([]F, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	if source == nil {
		return nil, nil
	}
	var roots []F
	idx := make(group.Index[T, F])
	for rec := range source {
		if cfg.IsRoot(rec) {
			roots = append(roots, rec)
			continue
		}
		pid := cfg.ParentID(rec)
		idx[pid] = append(idx[pid], rec)
	}
	return Assemble(roots, idx, cfg)
}

// Assemble recursively attaches each node's children, looked up in a
// prebuilt group index, onto the node itself, starting from the given
// roots. It mutates the records in place through cfg.SetChildren and
// returns the same root slice for convenience.
//
// SetChildren is invoked exactly once per visited node, also with an empty
// bucket, so every node of the assembled tree ends up with a defined
// (possibly nil) child run. When cfg.OnVisit is set it fires post-order
// with the node's zero-based depth.
//
// Without a MaxDepth guard, cyclic parent-id chains make Assemble recurse
// forever; acyclicity is a caller contract.
func Assemble[F any, K comparable](roots []F, idx group.Index[K, F], cfg Config[F, K]) ([]F, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	for _, root := range roots {
		if err := assembleNode(root, idx, cfg, 0); err != nil {
			return nil, err
		}
	}
	T().Debugf("arbor: assembled tree with %d root(s)", len(roots))
	return roots, nil
}

func assembleNode[F any, T comparable](current F, idx group.Index[T, F], cfg Config[F, T], depth int) error {
	if cfg.MaxDepth > 0 && depth >= cfg.MaxDepth {
		return fmt.Errorf("%w: node deeper than %d", ErrCycleDetected, cfg.MaxDepth)
	}
	children := idx.Children(cfg.ID(current))
	cfg.SetChildren(current, children)
	for _, child := range children {
		if err := assembleNode(child, idx, cfg, depth+1); err != nil {
			return err
		}
	}
	if cfg.OnVisit != nil {
		cfg.OnVisit(depth, current)
	}
	return nil
}

func partitionRoots[F any](source []F, isRoot func(F) bool) []F {
	var roots []F
	for _, rec := range source {
		if isRoot(rec) {
			roots = append(roots, rec)
		}
	}
	return roots
}

// Validate is an opt-in strictness pass over a flat source. It reports the
// first duplicate id as ErrDuplicateID. Assembly itself stays permissive:
// records sharing an id all receive the identical grouped bucket.
func Validate[F any, T comparable](source []F, cfg Config[F, T]) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	seen := make(map[T]struct{}, len(source))
	for _, rec := range source {
		id := cfg.ID(rec)
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
