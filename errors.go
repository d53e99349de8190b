package arbor

import "errors"

var (
	// ErrInvalidConfig signals missing or inconsistent accessor configuration.
	ErrInvalidConfig = errors.New("arbor: invalid configuration")
	// ErrCycleDetected signals that the opt-in depth guard tripped during
	// assembly, i.e. parent-id chains are (almost certainly) cyclic.
	ErrCycleDetected = errors.New("arbor: cycle detected")
	// ErrDuplicateID signals that strict validation found two records with
	// the same id.
	ErrDuplicateID = errors.New("arbor: duplicate id")
)
