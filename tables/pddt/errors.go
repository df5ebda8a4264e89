package pddt

import "errors"

// Build input validation.
var (
	// ErrWidth indicates n is outside [1, 32].
	ErrWidth = errors.New("pddt: width must be in [1, 32]")

	// ErrRotConstraint indicates a non-negative RotConstraint is not a
	// valid rotation amount for the configured width.
	ErrRotConstraint = errors.New("pddt: rotation constraint must be in [0, width)")
)

// ThresholdSearch input validation.
var (
	// ErrNoHighway indicates ThresholdSearch was called against an empty
	// Table, which can never produce a trail.
	ErrNoHighway = errors.New("pddt: highway table is empty")
)
