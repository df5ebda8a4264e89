// Package bitops provides the bit-vector primitives that every ARX weight
// operator in this module is built from: Hamming weight, bit reversal,
// carry chains, leading-zero masks, the parallel-log/parallel-trunc pair
// used by the constant-addition weight formula, the common-prefix mask of
// Wallén's Theorem 2, and the all-one-parity functions of LM-2001
// Algorithm 1.
//
// What & Why
//
// These are the leaf functions everything above (arxop, neoalzette, search)
// calls on every hot-path node. They are total: no argument combination is
// rejected, no allocation occurs, and every function returns in O(1) or
// Θ(log n) time on a 32-bit (or, where noted, 64-bit) machine word.
//
// Determinism & Stability
//
// All functions are pure and depend only on their arguments. None consult
// global state, the clock, or the host's instruction set beyond what
// math/bits already abstracts over.
//
// Mathematics references
//
//   - H. Lipmaa, S. Moriai, "Efficient Algorithms for Computing Differential
//     Properties of Addition", FSE 2001.
//   - J. Wallén, "Linear Approximations of Addition Modulo 2^n", FSE 2003
//     (Theorem 2 defines the common-prefix mask CPM; Algorithm 1 in the
//     companion LM-2001 paper defines the all-one-parity functions aop/aopr).
//   - "A Bit-Vector Differential Model for the Modular Addition by a
//     Constant", 2022 (ParallelLog/ParallelTrunc, Proposition 1).
package bitops
