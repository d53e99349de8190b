package arbor

// Walk traverses nodes depth-first, following the children accessor into
// each subtree. For every node in sequence order it invokes preVisit (when
// non-nil), walks the node's children, then invokes postVisit (when
// non-nil). A node's own pre-visit therefore always precedes its first
// child's pre-visit, and its post-visit always follows its last child's
// post-visit.
//
// A nil or empty node slice is a no-op; no callback fires.
func Walk[F any](nodes []F, children func(F) []F, preVisit, postVisit func(F)) {
	assert(children != nil, "arbor.Walk requires a children accessor")
	walk(nodes, children, preVisit, postVisit)
}

func walk[F any](nodes []F, children func(F) []F, preVisit, postVisit func(F)) {
	if len(nodes) == 0 {
		return
	}
	for _, node := range nodes {
		if preVisit != nil {
			preVisit(node)
		}
		walk(children(node), children, preVisit, postVisit)
		if postVisit != nil {
			postVisit(node)
		}
	}
}
