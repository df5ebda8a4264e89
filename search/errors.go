package search

import "errors"

// Input validation errors, returned before a search begins.
var (
	// ErrRounds indicates Config.Rounds is less than 1.
	ErrRounds = errors.New("search: rounds must be >= 1")

	// ErrNegativeBudget indicates a node/time budget field was negative;
	// zero means unlimited, negative is never meaningful.
	ErrNegativeBudget = errors.New("search: budget fields must be >= 0")
)

// Engine governance sentinels, surfaced on Result rather than returned as
// errors: both are cooperative and never abort a search mid-step. The
// node limit is compared at every node; the clock is read only at the
// node-count polling interval.
var (
	// ErrNodeLimit indicates Config.MaxNodes was reached before the
	// search exhausted its tree; Result.HitNodeLimit is set instead of
	// this being returned directly from Differential/Linear.
	ErrNodeLimit = errors.New("search: node limit exceeded")

	// ErrTimeLimit indicates Config.MaxSeconds elapsed before the search
	// exhausted its tree; Result.HitTimeLimit is set instead of this
	// being returned directly from Differential/Linear.
	ErrTimeLimit = errors.New("search: time limit exceeded")
)
