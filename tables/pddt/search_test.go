package pddt

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/search"
)

func TestThresholdSearchRejectsEmptyTable(t *testing.T) {
	tbl, err := Build(4, -1, 0)
	require.NoError(t, err)
	_, err = ThresholdSearch(tbl, search.DefaultConfig(2))
	require.ErrorIs(t, err, ErrNoHighway)
}

func TestThresholdSearchFindsTheAllZeroTrail(t *testing.T) {
	tbl, err := Build(8, 2, -1)
	require.NoError(t, err)
	require.Greater(t, tbl.Len(), 0)

	res, err := ThresholdSearch(tbl, search.DefaultConfig(2))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, arxop.Weight(0), res.BestWeight)
}

func TestThresholdSearchHonorsNodeLimit(t *testing.T) {
	tbl, err := Build(8, 2, -1)
	require.NoError(t, err)

	cfg := search.DefaultConfig(4)
	cfg.MaxNodes = 1
	res, err := ThresholdSearch(tbl, cfg)
	require.NoError(t, err)
	require.True(t, res.HitNodeLimit)
}

func TestThresholdSearchFourRoundsFindsAFeasibleTrail(t *testing.T) {
	tbl, err := Build(8, 2, -1)
	require.NoError(t, err)

	cfg := search.DefaultConfig(4)
	res, err := ThresholdSearch(tbl, cfg)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Len(t, res.BestTrail.Steps, 4)
	require.True(t, arxop.Feasible(res.BestWeight))
}

// TestCountryRoadsDerivesMultiBitBeta pins down that countryRoads
// derives its candidate β from the table's own recorded γ values
// (β = γ − α_{r−1}) rather than trying only the zero mask and single-
// bit masks: a table with one multi-bit γ must yield a matching
// multi-bit β candidate, which a fixed single-bit/zero shortlist would
// never have produced.
func TestCountryRoadsDerivesMultiBitBeta(t *testing.T) {
	const gamma = uint32(0x0000000f)
	const alphaPrev = uint32(0x5)
	wantBeta := gamma - alphaPrev
	require.Greater(t, bits.OnesCount32(wantBeta), 1, "test fixture must exercise a multi-bit beta")

	tbl := &Table{
		width:   32,
		thresh:  arxop.Weight(32),
		entries: []Entry{{Alpha: 0, Beta: 0, Gamma: gamma, Weight: 1}},
		byGamma: map[uint32][]int32{gamma: {0}},
	}

	e := &thresholdEngine{
		table:   tbl,
		cfg:     search.DefaultConfig(4),
		working: make([]search.TrailStep, 4),
	}
	e.working[2] = search.TrailStep{InA: alphaPrev}

	candidates := e.countryRoads(0x1, 3)
	found := false
	for _, c := range candidates {
		if c.Beta == wantBeta {
			found = true
		}
	}
	require.True(t, found, "expected derived beta %#08x among candidates %+v", wantBeta, candidates)
}
