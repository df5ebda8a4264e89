package clat

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/search"
)

func TestLookupAndRecombineRejectsNilTable(t *testing.T) {
	err := LookupAndRecombine(nil, 0, 8, 0, func(uint32, uint32, int) bool { return true })
	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestLookupAndRecombineRejectsUnevenSplit(t *testing.T) {
	tbl, err := Build(5)
	require.NoError(t, err)
	err = LookupAndRecombine(tbl, 0, 7, 0, func(uint32, uint32, int) bool { return true })
	require.ErrorIs(t, err, ErrNotDivisible)
}

func TestLookupAndRecombineZeroMaskYieldsZeroWeightIdentity(t *testing.T) {
	tbl, err := Build(4)
	require.NoError(t, err)

	found := false
	err = LookupAndRecombine(tbl, 0, 8, 0, func(u, w uint32, weight int) bool {
		if u == 0 && w == 0 && weight == 0 {
			found = true
		}
		return true
	})
	require.NoError(t, err)
	require.True(t, found)
}

func TestLookupAndRecombineStopsWhenYieldReturnsFalse(t *testing.T) {
	tbl, err := Build(4)
	require.NoError(t, err)

	calls := 0
	err = LookupAndRecombine(tbl, 0, 8, tbl.Width()*8, func(uint32, uint32, int) bool {
		calls++
		return false
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestSLRSearchRejectsEmptyTable(t *testing.T) {
	cfg := search.DefaultConfig(2)
	_, err := SLRSearch(nil, cfg, 0)
	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestSLRSearchRejectsInvalidConfig(t *testing.T) {
	tbl, err := Build(4)
	require.NoError(t, err)
	cfg := search.DefaultConfig(0)
	_, err = SLRSearch(tbl, cfg, 0)
	require.Error(t, err)
}

func TestSLRSearchFindsTheAllZeroTrail(t *testing.T) {
	tbl, err := Build(4)
	require.NoError(t, err)

	cfg := search.DefaultConfig(3)
	res, err := SLRSearch(tbl, cfg, 0)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, arxop.Weight(0), res.BestWeight)
	for _, step := range res.BestTrail.Steps {
		require.Equal(t, uint32(0), step.OutA)
		require.Equal(t, uint32(0), step.OutB)
	}
}

func TestSLRSearchHonorsNodeLimit(t *testing.T) {
	tbl, err := Build(4)
	require.NoError(t, err)

	cfg := search.DefaultConfig(4)
	cfg.MaxNodes = 1
	res, err := SLRSearch(tbl, cfg, 0)
	require.NoError(t, err)
	require.True(t, res.HitNodeLimit)
}
