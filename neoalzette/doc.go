// Package neoalzette encodes one round of the NeoAlzette ARX primitive as a
// straight-line sequence of typed steps over two 32-bit branches (A, B):
// modular addition by a variable-derived term, modular subtraction by a
// round constant, XOR/rotate mixing, cross-branch affine-subspace
// injection, and linear diffusion.
//
// ForwardRound and BackwardRound apply this sequence deterministically
// (no candidate enumeration — that lives in package search, which calls
// back into the weighted-step scoring functions of package arxop). The
// injection steps are modeled as affine differential transitions: each
// cross-branch injector is a quadratic function of its input branch, so
// its differential derivative D_Δf(x) = Mx ⊕ c is affine, and its
// reachable output set is enumerable as a coset of a GF(2) linear
// subspace (see BuildInjectionTransition, EnumerateReachable).
package neoalzette
