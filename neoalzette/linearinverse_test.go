package neoalzette

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestL1InverseUndoesL1(t *testing.T) {
	samples := []uint32{0, 1, 0x12345678, 0xABCDEF01, 0xFFFFFFFF, 0x80000001}
	for _, x := range samples {
		require.Equal(t, x, L1Inverse(L1(x)), "x=%#x", x)
		require.Equal(t, x, L1(L1Inverse(x)), "x=%#x", x)
	}
}

func TestL2InverseUndoesL2(t *testing.T) {
	samples := []uint32{0, 1, 0x12345678, 0xABCDEF01, 0xFFFFFFFF, 0x80000001}
	for _, x := range samples {
		require.Equal(t, x, L2Inverse(L2(x)), "x=%#x", x)
		require.Equal(t, x, L2(L2Inverse(x)), "x=%#x", x)
	}
}

func TestL1InverseTransposeIsAdjoint(t *testing.T) {
	masks := []uint32{0, 1, 0xF0F0F0F0, 0x55555555, 0xDEADBEEF}
	xs := []uint32{0, 1, 0x0F0F0F0F, 0xAAAAAAAA, 0xCAFEBABE}
	for _, m := range masks {
		for _, x := range xs {
			require.Equal(t, parity(m, L1Inverse(x)), parity(L1InverseTranspose(m), x), "mask=%#x x=%#x", m, x)
		}
	}
}

func TestL2InverseTransposeIsAdjoint(t *testing.T) {
	masks := []uint32{0, 1, 0xF0F0F0F0, 0x55555555, 0xDEADBEEF}
	xs := []uint32{0, 1, 0x0F0F0F0F, 0xAAAAAAAA, 0xCAFEBABE}
	for _, m := range masks {
		for _, x := range xs {
			require.Equal(t, parity(m, L2Inverse(x)), parity(L2InverseTranspose(m), x), "mask=%#x x=%#x", m, x)
		}
	}
}
