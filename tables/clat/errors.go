package clat

import "errors"

// Build input validation.
var (
	// ErrChunkWidth indicates m is outside [1, 16]; cLAT's bucket count
	// grows as 2^m, so widths above 16 are never practical to build.
	ErrChunkWidth = errors.New("clat: chunk width must be in [1, 16]")
)

// LookupAndRecombine / SLRSearch input validation.
var (
	// ErrNotDivisible indicates the full bit width does not split into a
	// whole number of m-bit chunks.
	ErrNotDivisible = errors.New("clat: full width must be a multiple of the chunk width")

	// ErrEmptyTable indicates SLRSearch was called against a Table with
	// no recorded entries.
	ErrEmptyTable = errors.New("clat: table is empty")
)
