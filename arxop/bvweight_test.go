package arxop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBvWeightAddZeroDiffIsIdentity exercises the structural fact that a
// zero input difference always propagates to a zero output difference
// with certainty for addition by any constant: whenever u=v=0, s000'
// collapses to 0 regardless of a, which forces both the integer and
// fractional parts of the weight to 0.
func TestBvWeightAddZeroDiffIsIdentity(t *testing.T) {
	for _, n := range []int{4, 8, 10, 16, 32} {
		mask := maskN(n)
		for a := uint32(0); a <= mask; a += 97 {
			require.Equal(t, Weight(0), BvWeightAdd(0, 0, a, n),
				"n=%d a=%#x", n, a)
		}
	}
}

// TestBvWeightSubDelegatesViaTwosComplement checks property P4 (spec.md
// §8): subtracting a constant is modeled as adding its two's-complement
// negation, so BvWeightSub(u,v,a,n) must equal
// BvWeightAdd(u,v,(2^n-a) mod 2^n,n) exactly, by construction.
func TestBvWeightSubDelegatesViaTwosComplement(t *testing.T) {
	const n = 10
	mask := maskN(n)

	for u := uint32(0); u <= mask; u += 131 {
		for v := uint32(0); v <= mask; v += 197 {
			for a := uint32(0); a <= mask; a += 211 {
				want := BvWeightAdd(u, v, negModPow2(a, n), n)
				got := BvWeightSub(u, v, a, n)
				require.Equal(t, want, got, "u=%#x v=%#x a=%#x", u, v, a)
			}
		}
	}
}

func TestNegModPow2IsInvolution(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10, 31, 32} {
		mask := maskN(n)
		for a := uint32(0); a <= mask; a += 53 {
			require.Equal(t, a&mask, negModPow2(negModPow2(a, n), n), "n=%d a=%#x", n, a)
		}
	}
}

func TestDiffValidRejectsState001(t *testing.T) {
	// bit0: u=0,v=1 with no predecessor (treated as 0,0) is state 001.
	require.False(t, diffValid(0b0, 0b1, 4))
	require.True(t, diffValid(0b1, 0b1, 4))
}
