package group

import "iter"

// Index maps a parent id to the ordered run of records grouped under it.
//
// A missing key means "no children": callers treat the zero-value lookup as
// an empty run. No uniqueness constraint is enforced on ids; when several
// records share an id they all resolve to the identical bucket.
type Index[T comparable, F any] map[T][]F

// Children returns the bucket for id, or nil when no record claims id as
// its parent.
func (idx Index[T, F]) Children(id T) []F {
	return idx[id]
}

// Build scans source once and buckets every non-root record under the value
// its parent-id accessor returns. Records claimed by isRoot are excluded.
//
// Relative source order is preserved inside each bucket.
func Build[T comparable, F any](source []F, parentID func(F) T, isRoot func(F) bool) Index[T, F] {
	assert(parentID != nil, "group.Build requires a parent-id accessor")
	assert(isRoot != nil, "group.Build requires a root predicate")
	idx := make(Index[T, F])
	for _, rec := range source {
		if isRoot(rec) {
			continue
		}
		pid := parentID(rec)
		idx[pid] = append(idx[pid], rec)
	}
	return idx
}

// BuildSeq is Build for a lazily produced source. The sequence is consumed
// exactly once.
func BuildSeq[T comparable, F any](source iter.Seq[F], parentID func(F) T, isRoot func(F) bool) Index[T, F] {
	assert(parentID != nil, "group.BuildSeq requires a parent-id accessor")
	assert(isRoot != nil, "group.BuildSeq requires a root predicate")
	idx := make(Index[T, F])
	if source == nil {
		return idx
	}
	for rec := range source {
		if isRoot(rec) {
			continue
		}
		pid := parentID(rec)
		idx[pid] = append(idx[pid], rec)
	}
	return idx
}

// merge appends all buckets of other onto idx.
func (idx Index[T, F]) merge(other Index[T, F]) {
	for pid, run := range other {
		idx[pid] = append(idx[pid], run...)
	}
}
