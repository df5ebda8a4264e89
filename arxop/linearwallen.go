package arxop

import "github.com/twilight-dream-of-magic/neoalzette-arxsearch/bitops"

// LinearCorrAddVar computes the weight of the variable-variable linear
// correlation for z = x + y (32-bit) via Wallén's Θ(log n) construction
// (spec.md §4.2.5):
//
//	Lemma 7:   C(u ← v, w) = C(u ←^carry v+u, w+u)
//	Theorem 1: |C(u ←^carry v', w')| = 2^-HW(z), z = CPM(u, eq(v',w'))
//	           feasible iff v'∧z != 0 and w'∧z != 0
//
// u is the output mask, v and w the two input masks. Returns Infeasible
// when the correlation is exactly zero.
func LinearCorrAddVar(u, v, w uint32) Weight {
	if u == 0 && v == 0 && w == 0 {
		// The all-zero mask combination trivially correlates perfectly
		// with any function; Lemma 7's carry shift otherwise collapses
		// v'=w'=0 into a spurious infeasibility.
		return 0
	}

	vPrime := v + u
	wPrime := w + u

	eq := bitops.Eq(vPrime, wPrime)
	z := bitops.CPM(u, eq, 32)

	if (vPrime&z) == 0 || (wPrime&z) == 0 {
		return Infeasible
	}
	return Weight(int32(bitops.HW(z)))
}

// LinearCorrAddVarValue returns the actual (unsigned) correlation
// magnitude 2^-weight, or 0 when infeasible.
func LinearCorrAddVarValue(u, v, w uint32) float64 {
	wt := LinearCorrAddVar(u, v, w)
	if !Feasible(wt) {
		return 0
	}
	return exp2Neg(int(wt))
}
