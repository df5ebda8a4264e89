package neoalzette

import "math/bits"

// RC holds the sixteen round constants of the NeoAlzette ARX-box, in the
// exact order and values the reference implementation uses. A cipher's
// round constants are not an implementation choice to improvise.
var RC = [16]uint32{
	0x16B2C40B, 0xC117176A, 0x0F9A2598, 0xA1563ACA,
	0x243F6A88, 0x85A308D3, 0x13198102, 0xE0370734,
	0x9E3779B9, 0x7F4A7C15, 0xF39CC060, 0x5CEDC834,
	0xB7E15162, 0x8AED2A6A, 0xBF715880, 0x9CF4F3C7,
}

// R0, R1 are the two cross-branch rotation amounts used by both XOR/rotate
// mixing stages of a round.
const (
	R0 = 24
	R1 = 16
)

func rotl(x uint32, r int) uint32 { return bits.RotateLeft32(x, r) }
func rotr(x uint32, r int) uint32 { return bits.RotateLeft32(x, -r) }

// L1 is the first linear-diffusion layer. Being XOR-linear, it propagates
// differences and masks identically to values: Δ(L1(x)) = L1(Δx).
func L1(x uint32) uint32 {
	return x ^ rotl(x, 2) ^ rotl(x, 10) ^ rotl(x, 18) ^ rotl(x, 24)
}

// L2 is the second linear-diffusion layer, same shape as L1 with a
// different rotation set.
func L2(x uint32) uint32 {
	return x ^ rotl(x, 8) ^ rotl(x, 14) ^ rotl(x, 22) ^ rotl(x, 30)
}

// L1Transpose is L1's adjoint under the XOR inner product, used to
// propagate linear masks backward through a forward-direction L1 value
// transform.
func L1Transpose(mask uint32) uint32 {
	return mask ^ rotr(mask, 2) ^ rotr(mask, 10) ^ rotr(mask, 18) ^ rotr(mask, 24)
}

// L2Transpose is L2's adjoint, mirroring L1Transpose.
func L2Transpose(mask uint32) uint32 {
	return mask ^ rotr(mask, 8) ^ rotr(mask, 14) ^ rotr(mask, 22) ^ rotr(mask, 30)
}
