package arxop


// mat2 is a 2x2 row-vector transfer matrix indexed by carry-in (row) and
// carry-out (column), following the per-bit carry Markov chain of
// spec.md §4.2.4.
type mat2 struct {
	m00, m01, m10, m11 float64
}

func (m mat2) mulRow(v0, v1 float64) (float64, float64) {
	return v0*m.m00 + v1*m.m10, v0*m.m01 + v1*m.m11
}

func carryOutBit(x, y, cin int) int {
	return (x & y) | (x & cin) | (y & cin)
}

func signedBit(maskBit, valueBit int) float64 {
	if maskBit == 0 {
		return 1
	}
	if valueBit == 0 {
		return 1
	}
	return -1
}

func bit64(v uint64, i int) int {
	return int((v >> uint(i)) & 1)
}

// makeMiConstBit builds the bit-i local transfer matrix for z = x + a
// (var-const): only x is random, so the averaging factor is 1/2.
func makeMiConstBit(alphaI, betaI, aI int) mat2 {
	var m mat2
	for cin := 0; cin <= 1; cin++ {
		for cout := 0; cout <= 1; cout++ {
			acc := 0.0
			for x := 0; x <= 1; x++ {
				if carryOutBit(x, aI, cin) != cout {
					continue
				}
				zi := x ^ aI ^ cin
				s := signedBit(alphaI, x) * signedBit(betaI, zi)
				acc += s
			}
			val := acc * 0.5
			set2x2(&m, cin, cout, val)
		}
	}
	return m
}

// makeMiVarVarBit builds the bit-i local transfer matrix for z = x + y
// (var-var): both x,y are random, so the averaging factor is 1/4.
func makeMiVarVarBit(alphaI, gammaI, betaI int) mat2 {
	var m mat2
	for cin := 0; cin <= 1; cin++ {
		for cout := 0; cout <= 1; cout++ {
			acc := 0.0
			for x := 0; x <= 1; x++ {
				for y := 0; y <= 1; y++ {
					if carryOutBit(x, y, cin) != cout {
						continue
					}
					zi := x ^ y ^ cin
					s := signedBit(alphaI, x) * signedBit(gammaI, y) * signedBit(betaI, zi)
					acc += s
				}
			}
			val := acc * 0.25
			set2x2(&m, cin, cout, val)
		}
	}
	return m
}

func set2x2(m *mat2, cin, cout int, val float64) {
	switch {
	case cin == 0 && cout == 0:
		m.m00 = val
	case cin == 0 && cout == 1:
		m.m01 = val
	case cin == 1 && cout == 0:
		m.m10 = val
	default:
		m.m11 = val
	}
}

// LinearCorrAddConst computes the exact signed correlation of z = x + a
// under input mask α and output mask β, for n in [1,64], via the 2-state
// carry Markov chain of spec.md §4.2.4.
func LinearCorrAddConst(alpha, beta uint32, a uint64, n int) float64 {
	mask := maskN64(n)
	a &= mask
	v0, v1 := 1.0, 0.0
	for i := 0; i < n; i++ {
		m := makeMiConstBit(bit64(uint64(alpha), i), bit64(uint64(beta), i), bit64(a, i))
		v0, v1 = m.mulRow(v0, v1)
	}
	return v0 + v1
}

// LinearCorrSubConst computes the exact correlation for z = x - a by
// delegating to LinearCorrAddConst with the two's-complement negation of
// a, matching spec.md P6.
func LinearCorrSubConst(alpha, beta uint32, a uint64, n int) float64 {
	mask := maskN64(n)
	aNeg := (^a + 1) & mask
	return LinearCorrAddConst(alpha, beta, aNeg, n)
}

// LinearCorrAddVarExact computes the exact signed correlation of z = x +
// y under masks α (on x), γ (on y), β (on z), via the same carry Markov
// chain generalized to the var-var case (averaging factor 1/4 per bit).
func LinearCorrAddVarExact(alpha, gamma, beta uint32, n int) float64 {
	v0, v1 := 1.0, 0.0
	for i := 0; i < n; i++ {
		m := makeMiVarVarBit(bit64(uint64(alpha), i), bit64(uint64(gamma), i), bit64(uint64(beta), i))
		v0, v1 = m.mulRow(v0, v1)
	}
	return v0 + v1
}

func maskN64(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}
