package exactprob

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// precisionBits is the big.Float mantissa precision every reference
// computation in this package runs at: generous enough that the -log2
// conversion never loses a meaningful bit even for probabilities as
// small as 2^-64.
const precisionBits = 200

func newFloat() *big.Float {
	return new(big.Float).SetPrec(precisionBits)
}

// weightFromProbability returns -log2(p) at precisionBits precision,
// the high-precision analogue of arxop.WeightOf's float64 -math.Log2.
func weightFromProbability(p *big.Float) *big.Float {
	return newFloat().Neg(bigfloat.Log2(p))
}

// maxBruteForceWidth bounds XDPAddExact's pair enumeration (it iterates
// 2^(2n) pairs), keeping even an accidental large n call tractable.
const maxBruteForceWidth = 12

// maxSingleEnumerationWidth bounds the single-loop enumerators
// (BvWeightExact, CorrAddConstExact), which iterate 2^n values.
const maxSingleEnumerationWidth = 20

func validateWidth(n, max int) error {
	if n < 1 || n > max {
		return ErrWidth
	}
	return nil
}

func maskN(n int) uint32 {
	if n >= 32 {
		return ^uint32(0)
	}
	return (uint32(1) << uint(n)) - 1
}

// XDPAddExact brute-forces the additive differential transition
// probability of (α, β → γ) at word size n by counting every (x, y)
// pair in [0, 2^n)^2 satisfying ((x⊕α)+(y⊕β)) ⊕ (x+y) = γ, independent
// of arxop.XDPAddN's Lipmaa-Moriai closed form. n is capped at 12 (a
// 2^24-pair enumeration) to keep the brute force itself tractable.
// weight is nil when the transition is never observed (probability 0).
func XDPAddExact(alpha, beta, gamma uint32, n int) (probability, weight *big.Float, err error) {
	if err := validateWidth(n, maxBruteForceWidth); err != nil {
		return nil, nil, err
	}
	mask := maskN(n)
	alpha &= mask
	beta &= mask
	gamma &= mask

	size := uint64(1) << uint(n)
	var hits uint64
	for x := uint64(0); x < size; x++ {
		xu := uint32(x)
		for y := uint64(0); y < size; y++ {
			yu := uint32(y)
			lhs := (((xu ^ alpha) + (yu ^ beta)) & mask) ^ ((xu + yu) & mask)
			if lhs == gamma {
				hits++
			}
		}
	}

	total := new(big.Int).Lsh(big.NewInt(1), uint(2*n))
	p := newFloat().SetInt(new(big.Int).SetUint64(hits))
	p.Quo(p, newFloat().SetInt(total))
	if hits == 0 {
		return p, nil, nil
	}
	return p, weightFromProbability(p), nil
}

// BvWeightExact brute-forces the weight of the constant-addition
// differential transition (u → v) for z = x + a at word size n by
// counting every x in [0, 2^n) satisfying ((x⊕u)+a) ⊕ (x+a) = v,
// independent of arxop.BvWeightAdd's bit-vector Θ(log² n) formula.
// weight is nil when the transition is never observed.
func BvWeightExact(u, v, a uint32, n int) (probability, weight *big.Float, err error) {
	if err := validateWidth(n, maxSingleEnumerationWidth); err != nil {
		return nil, nil, err
	}
	mask := maskN(n)
	u &= mask
	v &= mask
	a &= mask

	size := uint64(1) << uint(n)
	var hits uint64
	for x := uint64(0); x < size; x++ {
		xu := uint32(x)
		lhs := (((xu ^ u) + a) & mask) ^ ((xu + a) & mask)
		if lhs == v {
			hits++
		}
	}

	p := newFloat().SetInt(new(big.Int).SetUint64(hits))
	p.Quo(p, newFloat().SetInt(new(big.Int).SetUint64(size)))
	if hits == 0 {
		return p, nil, nil
	}
	return p, weightFromProbability(p), nil
}

// CorrAddConstExact brute-forces the exact signed correlation of
// z = x + a under input mask alpha and output mask beta, at word size
// n, by direct (-1)^parity summation over every x in [0, 2^n),
// independent of arxop.LinearCorrAddConst's carry-Markov-chain
// recurrence. The two are expected to agree exactly (both compute the
// same closed quantity), so this doubles as a correctness cross-check
// for P5/P6 rather than an independent approximation.
func CorrAddConstExact(alpha, beta uint32, a uint64, n int) (*big.Float, error) {
	if err := validateWidth(n, maxSingleEnumerationWidth); err != nil {
		return nil, err
	}
	mask := maskN(n)
	a32 := uint32(a) & mask

	size := uint64(1) << uint(n)
	var acc int64
	for x := uint64(0); x < size; x++ {
		xu := uint32(x)
		z := (xu + a32) & mask
		parity := (popcount32(xu&alpha) ^ popcount32(z&beta)) & 1
		if parity == 0 {
			acc++
		} else {
			acc--
		}
	}

	corr := newFloat().SetInt64(acc)
	corr.Quo(corr, newFloat().SetInt(new(big.Int).SetUint64(size)))
	return corr, nil
}

func popcount32(x uint32) int {
	count := 0
	for x != 0 {
		count++
		x &= x - 1
	}
	return count
}
