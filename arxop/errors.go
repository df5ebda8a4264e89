package arxop

import "errors"

// Validation errors. Recoverable operator infeasibility never reaches this
// path — see Infeasible and Feasible instead.
var (
	// ErrBitWidth indicates a bit-width argument outside [1,64].
	ErrBitWidth = errors.New("arxop: bit width out of range [1,64]")
)
