package search

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
)

func TestGreedyUpperBoundZeroDifferenceStaysZeroWeight(t *testing.T) {
	cfg := DefaultConfig(4)
	trail := GreedyUpperBound(cfg, 0, 0)
	require.Equal(t, arxop.Weight(0), trail.TotalWeight)
	require.Len(t, trail.Steps, 4)
	for _, s := range trail.Steps {
		require.Equal(t, uint32(0), s.InA)
		require.Equal(t, uint32(0), s.InB)
		require.Equal(t, uint32(0), s.OutA)
		require.Equal(t, uint32(0), s.OutB)
		require.Equal(t, arxop.Weight(0), s.Weight)
	}
}

func TestGreedyUpperBoundTrailChainsAcrossRounds(t *testing.T) {
	cfg := DefaultConfig(3)
	trail := GreedyUpperBound(cfg, 0x1, 0x2)
	require.Len(t, trail.Steps, 3)
	for i := 1; i < len(trail.Steps); i++ {
		require.Equal(t, trail.Steps[i-1].OutA, trail.Steps[i].InA)
		require.Equal(t, trail.Steps[i-1].OutB, trail.Steps[i].InB)
	}

	var sum arxop.Weight
	for _, s := range trail.Steps {
		sum += s.Weight
	}
	require.Equal(t, sum, trail.TotalWeight)
}

func TestLinearGreedyUpperBoundZeroMaskStaysZeroWeight(t *testing.T) {
	cfg := DefaultConfig(4)
	trail := LinearGreedyUpperBound(cfg, 0, 0)
	require.Equal(t, arxop.Weight(0), trail.TotalWeight)
	require.Len(t, trail.Steps, 4)
}
