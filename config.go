package arbor

import "fmt"

// Config bundles the caller-supplied accessors that tie an opaque record
// type F with id type T to tree assembly. The package reads and mutates
// records exclusively through these functions.
type Config[F any, T comparable] struct {
	// ID extracts a record's own id.
	ID func(F) T
	// ParentID extracts the id of a record's parent. Never consulted for
	// records the root predicate claims.
	ParentID func(F) T
	// IsRoot reports whether a record belongs to the top level of the tree.
	// The predicate wins over ParentID: a root is never attached as a child,
	// whatever its parent id would resolve to.
	IsRoot func(F) bool
	// SetChildren stores an assembled child run on a record. Called exactly
	// once per visited node, also with a nil run for childless nodes.
	SetChildren func(F, []F)

	// OnVisit, when non-nil, is called post-order during assembly with the
	// node's zero-based depth, after the node's whole subtree is wired.
	OnVisit func(depth int, node F)

	// Workers > 1 routes grouping through the data-parallel index build.
	// Bucket order across partitions is then unspecified; callers that need
	// deterministic child order leave Workers at 0 or 1.
	Workers int

	// MaxDepth > 0 enables a recursion guard: assembly fails with
	// ErrCycleDetected when a node sits deeper than MaxDepth. Zero means
	// unguarded, which does not terminate on cyclic parent-id chains.
	MaxDepth int
}

func (cfg Config[F, T]) normalized() Config[F, T] {
	if cfg.Workers < 0 {
		cfg.Workers = 0
	}
	return cfg
}

func (cfg Config[F, T]) validate() error {
	if cfg.ID == nil {
		return fmt.Errorf("%w: ID accessor is required", ErrInvalidConfig)
	}
	if cfg.ParentID == nil {
		return fmt.Errorf("%w: ParentID accessor is required", ErrInvalidConfig)
	}
	if cfg.IsRoot == nil {
		return fmt.Errorf("%w: IsRoot predicate is required", ErrInvalidConfig)
	}
	if cfg.SetChildren == nil {
		return fmt.Errorf("%w: SetChildren is required", ErrInvalidConfig)
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: MaxDepth must not be negative", ErrInvalidConfig)
	}
	return nil
}
