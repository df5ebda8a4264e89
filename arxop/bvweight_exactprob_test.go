package arxop

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/exactprob"
)

// TestBvWeightAddMatchesExactProbabilityBound checks property P3
// (spec.md §8): the returned ceiled weight never strays from the
// brute-force -log2(probability) reference by more than the paper's
// stated approximation slack (0.029·(n−1)) plus the one extra integer
// the final ceiling step can add. The brute-force reference comes from
// exactprob, which enumerates the transition directly rather than
// reusing BvWeightAdd's own bit-vector formula.
func TestBvWeightAddMatchesExactProbabilityBound(t *testing.T) {
	const n = 10
	mask := maskN(n)
	tolerance := 1.0 + 0.029*float64(n-1)

	for u := uint32(0); u <= mask; u += 131 {
		for v := uint32(0); v <= mask; v += 197 {
			for a := uint32(0); a <= mask; a += 211 {
				got := BvWeightAdd(u, v, a, n)
				_, exactWeight, err := exactprob.BvWeightExact(u, v, a, n)
				require.NoError(t, err)

				if exactWeight == nil {
					require.Falsef(t, Feasible(got), "u=%#x v=%#x a=%#x expected infeasible", u, v, a)
					continue
				}
				require.Truef(t, Feasible(got), "u=%#x v=%#x a=%#x expected feasible", u, v, a)

				exactF, _ := exactWeight.Float64()
				require.InDeltaf(t, exactF, float64(got), tolerance,
					"u=%#x v=%#x a=%#x", u, v, a)
			}
		}
	}
}
