package arbor

// Flatten collects the nodes of a tree into a flat slice, in pre-order:
// parents before their own children, siblings in tree order. Every node is
// tested against include independently; excluding a parent does not prune
// its subtree.
func Flatten[F any](roots []F, children func(F) []F, include func(F) bool) []F {
	return FlattenInto(roots, children, include, nil)
}

// FlattenInto is Flatten appending onto a caller-supplied target slice.
// The (possibly reallocated) target is returned.
func FlattenInto[F any](roots []F, children func(F) []F, include func(F) bool, target []F) []F {
	assert(children != nil, "arbor.FlattenInto requires a children accessor")
	assert(include != nil, "arbor.FlattenInto requires an include filter")
	walk(roots, children, func(node F) {
		if include(node) {
			target = append(target, node)
		}
	}, nil)
	return target
}
