package arxop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLinearCorrAddConstZeroMasksIsUnity checks property P5 (spec.md §8):
// with both masks zero, z = x + a correlates perfectly with the trivial
// relation regardless of a. Per-bit transfer matrices are row-stochastic
// whenever alpha=beta=0 (every signedBit call degenerates to 1), so the
// running (v0,v1) sum is invariant at 1 across every bit position.
func TestLinearCorrAddConstZeroMasksIsUnity(t *testing.T) {
	for _, n := range []int{1, 2, 8, 16, 32, 64} {
		mask := maskN64(n)
		for a := uint64(0); a <= mask; a += 997 {
			got := LinearCorrAddConst(0, 0, a, n)
			require.InDelta(t, 1.0, got, 1e-9, "n=%d a=%#x", n, a)
		}
	}
}

// TestLinearCorrAddConstReferenceScenario exercises S3: alpha=beta=0,
// a=0xDEADBEEF, n=32, a specific instance of P5.
func TestLinearCorrAddConstReferenceScenario(t *testing.T) {
	got := LinearCorrAddConst(0, 0, 0xDEADBEEF, 32)
	require.InDelta(t, 1.0, got, 1e-9)
}

// TestLinearCorrSubConstDelegatesViaNegation checks property P6: subtracting
// a constant is modeled as adding its two's-complement negation, so this
// must hold exactly by construction.
func TestLinearCorrSubConstDelegatesViaNegation(t *testing.T) {
	const n = 16
	mask := maskN64(n)

	for alpha := uint32(0); alpha <= 0xFFFF; alpha += 4327 {
		for beta := uint32(0); beta <= 0xFFFF; beta += 6229 {
			for a := uint64(0); a <= mask; a += 3001 {
				aNeg := (^a + 1) & mask
				want := LinearCorrAddConst(alpha, beta, aNeg, n)
				got := LinearCorrSubConst(alpha, beta, a, n)
				require.InDelta(t, want, got, 1e-12, "alpha=%#x beta=%#x a=%#x", alpha, beta, a)
			}
		}
	}
}

// TestLinearCorrAddVarZeroMasksIsUnity is the variable-variable analogue of
// P5: all-zero masks trivially correlate with weight 0 (correlation 1),
// regardless of what Wallén's carry-shifted recursion would otherwise say
// about v'=w'=0.
func TestLinearCorrAddVarZeroMasksIsUnity(t *testing.T) {
	w := LinearCorrAddVar(0, 0, 0)
	require.True(t, Feasible(w))
	require.Equal(t, Weight(0), w)
	require.Equal(t, 1.0, LinearCorrAddVarValue(0, 0, 0))
}

// TestLinearCorrAddVarZeroOutputMaskNonzeroInputIsInfeasible documents the
// companion fact: if the output mask is zero but an input mask is not, the
// masked input sum is balanced over the random variable, giving exact-zero
// correlation (reported as Infeasible).
func TestLinearCorrAddVarZeroOutputMaskNonzeroInputIsInfeasible(t *testing.T) {
	require.False(t, Feasible(LinearCorrAddVar(0, 0, 1)))
	require.False(t, Feasible(LinearCorrAddVar(0, 1, 0)))
}
