package arxop

import (
	"math"

	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/bitops"
)

// BvWeightAdd implements Algorithm 1 of "A Bit-Vector Differential Model
// for the Modular Addition by a Constant" (2022): the Θ(log²n) weight of
// the differential transition (u → v) for z = x + a, at word size n.
//
// Infeasibility is reported when the s001 validity check fails: any bit
// position whose two predecessor bits (u,v) are both 0 while u_i⊕v_i=1
// makes the transition impossible (spec.md §4.2.3).
func BvWeightAdd(u, v, a uint32, n int) Weight {
	mask := maskN(n)
	u &= mask
	v &= mask
	a &= mask

	if !diffValid(u, v, n) {
		return Infeasible
	}

	// LZ and RevCarry anchor their notion of "most significant bit" at
	// bit 31. For n<32 the n-bit vector is top-aligned into the native
	// 32-bit word first, so bit (n-1) of the logical vector lands on
	// bit 31 where those primitives expect it; shifting is lossless
	// since RevCarry re-derives its LSB-relative carry chain through
	// its own internal reversal.
	shift := uint(32 - n)
	u <<= shift
	v <<= shift
	a <<= shift

	s000 := (^(u << 1)) & (^(v << 1))
	s000p := s000 & ^bitops.LZ(^s000)

	t := (^s000p) & (s000 << 1)
	tp := s000p & ^(s000 << 1)

	s := ((a << 1) & t) ^ (a & (s000 << 1))

	q := ^((a << 1) ^ u ^ v)
	d := bitops.RevCarry((s000p<<1)&tp, q) | q

	w := (q << (s & d)) | (s & ^d)

	intPart := bitops.HW((u^v)<<1) ^ bitops.HW(s000p) ^
		bitops.ParallelLog((w&s000p)<<1, s000p<<1)

	frac := bitops.ParallelTrunc(w<<1, bitops.RevCarry((w&s000p)<<1, s000p<<1))

	bvweight := (intPart << 4) | frac
	if bvweight == 0 {
		return 0
	}

	approx := float64(bvweight) / 16.0
	return Weight(int32(math.Ceil(approx)))
}

// BvWeightSub computes the weight of the differential transition (u → v)
// for z = x - a by delegating to BvWeightAdd with the negated constant:
// x - a = x + ((2^n - a) mod 2^n). Spec.md P4 requires this identity to
// hold exactly, so there is no duplicated logic here.
func BvWeightSub(u, v, a uint32, n int) Weight {
	return BvWeightAdd(u, v, negModPow2(a, n), n)
}

// negModPow2 returns (2^n - a) mod 2^n for n in [1,32].
func negModPow2(a uint32, n int) uint32 {
	mask := maskN(n)
	return (^a + 1) & mask
}

// diffValid runs the s001-state validity check (spec.md §4.2.3): for
// every bit position i with predecessor bits u[i-1]=v[i-1]=0, the
// transition is infeasible if u[i]⊕v[i]=1 — state "001" is impossible.
func diffValid(u, v uint32, n int) bool {
	var uPrev, vPrev uint32
	for i := 0; i < n; i++ {
		ui := (u >> uint(i)) & 1
		vi := (v >> uint(i)) & 1
		if uPrev == 0 && vPrev == 0 && (ui^vi) == 1 {
			return false
		}
		uPrev, vPrev = ui, vi
	}
	return true
}
