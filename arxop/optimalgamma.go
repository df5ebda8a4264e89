package arxop

import "github.com/twilight-dream-of-magic/neoalzette-arxsearch/bitops"

// maskN returns the low-n-bit mask (1 <= n <= 32).
func maskN(n int) uint32 {
	if n >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << uint(n)) - 1
}

// OptimalGamma implements LM-2001 Algorithm 4: given (α,β) and bit width
// n, it directly constructs γ* maximizing xdp-add(α,β → γ) without
// enumerating candidates, together with the resulting weight.
func OptimalGamma(alpha, beta uint32, n int) (gamma uint32, w Weight) {
	mask := maskN(n)
	alpha &= mask
	beta &= mask

	r := alpha & 1
	e := (^(alpha ^ beta)) & (^r) & mask
	a := e & (e << 1) & (alpha ^ (alpha << 1)) & mask
	p := bitops.AOPR(a&mask, n)
	a = ((a | (a >> 1)) & (^r)) & mask
	b := ((a | e) << 1) & mask

	gamma = (((alpha^p)&a)|((alpha^beta^(alpha<<1))&^a&b)|(alpha&^a&^b)) & mask
	gamma = ((gamma & ^uint32(1)) | ((alpha ^ beta) & 1)) & mask

	w = XDPAddN(alpha, beta, gamma, n)
	return gamma, w
}
