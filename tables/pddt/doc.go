// Package pddt builds partial difference distribution tables for 32-bit
// variable-variable addition (every (α, β, γ) triple whose AOP weight is
// at or below a configured threshold) and runs Matsui's three-phase
// Highways/Country-Roads threshold search over them as an alternative
// front end to package search's plain bit-recursion enumerator.
//
// Build constructs the table once; ThresholdSearch treats it as
// immutable and read-only, safe to share across concurrent searches.
package pddt
