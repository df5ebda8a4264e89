// Package search implements branch-and-bound best-trail search over the
// NeoAlzette round body, in both the differential (forward, probability)
// and linear (backward, correlation) directions.
//
// Differential runs a depth-first search over round-indexed branch
// differences, enumerating each weighted round sub-step (addition,
// constant-subtraction, cross-branch injection) under a per-step weight
// cap, pruned by a running best weight and an optional remaining-round
// lower bound, seeded by a fast greedy upper bound (GreedyUpperBound).
// Linear mirrors the same shape walking round output masks back to round
// input masks, scoring addition/subtraction candidates by exact
// correlation and keeping only a heuristically ordered top-K per step.
//
// The DFS itself never allocates per node on the hot path: round state is
// carried as function arguments, the bit-recursion addition enumerator
// uses a fixed-size local array, and InjectionCache amortizes the
// cross-branch injection transitions across the whole run. A Context
// carries the mutable state of one top-level search call — its
// memoization table, node counter, and optional checkpoint sink — and is
// not safe for concurrent reuse across overlapping calls; independent
// calls with their own Context are fully concurrency-safe.
package search
