package pddt

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
)

func TestBuildRejectsBadWidth(t *testing.T) {
	_, err := Build(0, 4, -1)
	require.ErrorIs(t, err, ErrWidth)

	_, err = Build(33, 4, -1)
	require.ErrorIs(t, err, ErrWidth)
}

func TestBuildRejectsBadRotConstraint(t *testing.T) {
	_, err := Build(8, 4, 8)
	require.ErrorIs(t, err, ErrRotConstraint)
}

func TestBuildAlwaysContainsTheIdentityDiagonal(t *testing.T) {
	// (α, 0 → α) has weight HW(α) over the low n-1 bits: a zero β still
	// lets every active bit of α below the top one flip a carry. A
	// threshold of n-1 = 5 therefore keeps the whole diagonal.
	tbl, err := Build(6, 5, -1)
	require.NoError(t, err)
	require.Greater(t, tbl.Len(), 0)

	for alpha := uint32(0); alpha < 1<<6; alpha++ {
		entries := tbl.ByPair(alpha, 0)
		require.NotEmpty(t, entries, "alpha=%d", alpha)
		want := arxop.Weight(bits.OnesCount32(alpha & 0x1F))
		found := false
		for _, e := range entries {
			if e.Gamma == alpha && e.Weight == want {
				found = true
			}
		}
		require.True(t, found, "identity diagonal missing for alpha=%d", alpha)
	}
}

func TestBuildEveryEntryWithinThreshold(t *testing.T) {
	const thresh = arxop.Weight(3)
	tbl, err := Build(8, thresh, -1)
	require.NoError(t, err)
	require.Greater(t, tbl.Len(), 0)
	for _, e := range tbl.All() {
		require.True(t, arxop.Feasible(e.Weight))
		require.LessOrEqual(t, e.Weight, thresh)
	}
}

func TestBuildStructuralVariantFixesBetaToRotatedAlpha(t *testing.T) {
	const r = 2
	tbl, err := Build(8, 3, r)
	require.NoError(t, err)
	require.Greater(t, tbl.Len(), 0)
	for _, e := range tbl.All() {
		require.Equal(t, rotlN(e.Alpha, r, 8), e.Beta)
	}
}

func TestBestForPairReturnsMinimumWeight(t *testing.T) {
	tbl, err := Build(6, 5, -1)
	require.NoError(t, err)
	entries := tbl.ByPair(0, 0)
	require.NotEmpty(t, entries)
	best, ok := tbl.BestForPair(0, 0)
	require.True(t, ok)
	for _, e := range entries {
		require.LessOrEqual(t, best.Weight, e.Weight)
	}
}
