package exactprob

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXDPAddExactRejectsOutOfRangeWidth(t *testing.T) {
	_, _, err := XDPAddExact(0, 0, 0, 0)
	require.ErrorIs(t, err, ErrWidth)

	_, _, err = XDPAddExact(0, 0, 0, maxBruteForceWidth+1)
	require.ErrorIs(t, err, ErrWidth)
}

func TestXDPAddExactZeroDifferenceIsCertain(t *testing.T) {
	p, w, err := XDPAddExact(0, 0, 0, 6)
	require.NoError(t, err)
	require.NotNil(t, w)

	pf, _ := p.Float64()
	require.InDelta(t, 1.0, pf, 1e-12)

	wf, _ := w.Float64()
	require.InDelta(t, 0.0, wf, 1e-9)
}

func TestXDPAddExactInfeasibleOnLSBMismatchReturnsNilWeight(t *testing.T) {
	_, w, err := XDPAddExact(1, 0, 0, 6)
	require.NoError(t, err)
	require.Nil(t, w)
}

func TestBvWeightExactRejectsOutOfRangeWidth(t *testing.T) {
	_, _, err := BvWeightExact(0, 0, 0, 0)
	require.ErrorIs(t, err, ErrWidth)

	_, _, err = BvWeightExact(0, 0, 0, maxSingleEnumerationWidth+1)
	require.ErrorIs(t, err, ErrWidth)
}

func TestBvWeightExactZeroDifferenceIsCertain(t *testing.T) {
	p, w, err := BvWeightExact(0, 0, 0xABCD, 10)
	require.NoError(t, err)
	require.NotNil(t, w)

	pf, _ := p.Float64()
	require.InDelta(t, 1.0, pf, 1e-12)

	wf, _ := w.Float64()
	require.InDelta(t, 0.0, wf, 1e-9)
}

func TestCorrAddConstExactZeroMasksIsUnity(t *testing.T) {
	corr, err := CorrAddConstExact(0, 0, 0xDEADBEEF, 10)
	require.NoError(t, err)
	cf, _ := corr.Float64()
	require.InDelta(t, 1.0, cf, 1e-12)
}

func TestWeightFromProbabilityMatchesKnownDyadicValues(t *testing.T) {
	half := newFloat().SetFloat64(0.5)
	w := weightFromProbability(half)
	wf, _ := w.Float64()
	require.InDelta(t, 1.0, wf, 1e-9)

	quarter := newFloat().SetFloat64(0.25)
	w = weightFromProbability(quarter)
	wf, _ = w.Float64()
	require.InDelta(t, 2.0, wf, 1e-9)
}
