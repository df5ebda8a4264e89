// Package arxop implements the leaf ARX transition weight operators: the
// scoring functions that turn a candidate (input, output) pair at one
// algebraic step — modular addition, addition/subtraction by a constant,
// or the corresponding linear approximations — into a cryptographic
// weight or correlation.
//
// What & Why
//
// Four operator families are covered, each grounded on a specific paper:
//
//   - XDPAdd: Lipmaa–Moriai xdp-add, O(1), variable-variable differential.
//   - OptimalGamma: LM-2001 Algorithm 4, the closed-form construction of
//     the maximum-probability output difference for a fixed (α,β).
//   - BvWeightAdd/BvWeightSub: the Bit-Vector paper's Algorithm 1,
//     O(log²n), addition/subtraction-by-constant differential weight.
//   - LinearCorrAddConst/LinearCorrAddVar: exact (2x2 carry Markov chain)
//     and Θ(log n) (Wallén) linear correlation.
//
// Determinism & Stability
//
// Every exported function is pure. None allocate on their hot path; the
// search engine calls these at every enumerated candidate.
//
// Errors
//
// There are no recoverable errors here: infeasibility is reported through
// the Weight sentinel (see Infeasible), never through the error interface,
// so that pruning a branch costs nothing beyond a comparison.
//
// Mathematics references
//
//   - H. Lipmaa, S. Moriai, "Efficient Algorithms for Computing Differential
//     Properties of Addition", FSE 2001 (LNCS 2355).
//   - "A Bit-Vector Differential Model for the Modular Addition by a
//     Constant", 2022, Algorithm 1.
//   - J. Wallén, "Linear Approximations of Addition Modulo 2^n", FSE 2003.
package arxop
