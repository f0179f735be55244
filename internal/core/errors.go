package core

import "errors"

// Precondition failures reported by the core. Each is raised before any
// state changes, so a caller that sees one still holds an untouched grid.
var (
	// ErrDimensionMismatch reports a position whose length differs from
	// the space's dimension count.
	ErrDimensionMismatch = errors.New("position length does not match dimension count")
	// ErrIndexOutOfBounds reports an index or coordinate outside the grid.
	ErrIndexOutOfBounds = errors.New("index outside grid bounds")
	// ErrIncompatibleRule reports a rule paired with a neighborhood it was
	// not written for.
	ErrIncompatibleRule = errors.New("rule requires a different neighborhood")
)
