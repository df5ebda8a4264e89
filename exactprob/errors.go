package exactprob

import "errors"

// ErrWidth indicates a requested bit width falls outside a brute-force
// enumerator's tractable range.
var ErrWidth = errors.New("exactprob: width out of range")
