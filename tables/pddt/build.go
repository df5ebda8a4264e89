package pddt

import "github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"

// tableBuilder accumulates entries during recursion before Build hands
// them to a finalized, indexed Table.
type tableBuilder struct {
	width   int
	thresh  arxop.Weight
	entries []Entry
}

func maskBits(k int) uint32 {
	if k >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << uint(k)) - 1
}

func rotlN(x uint32, r, n int) uint32 {
	if n <= 0 || n > 32 {
		return x
	}
	r %= n
	m := maskBits(n)
	x &= m
	return ((x << uint(r)) | (x >> uint(n-r))) & m
}

// Build runs Algorithm 1: recursively extend k-bit prefixes of (α, β, γ)
// from the low bit upward, exploiting that the AOP weight of an n-bit
// addition, evaluated on a k-bit masked prefix, is non-decreasing in k —
// once a prefix's weight exceeds wThresh no extension of it can come back
// under the threshold, so the whole subtree is pruned.
//
// rotConstraint >= 0 selects the structural variant: β is fixed to α
// rotated left by rotConstraint bits, shrinking the triple enumeration
// from all of (α, β, γ) to (α, γ) — a table built this way only ever
// contains entries with β = rotl(α, rotConstraint).
func Build(n int, wThresh arxop.Weight, rotConstraint int) (*Table, error) {
	if n < 1 || n > 32 {
		return nil, ErrWidth
	}
	if rotConstraint >= n {
		return nil, ErrRotConstraint
	}

	b := &tableBuilder{width: n, thresh: wThresh}
	if rotConstraint >= 0 {
		b.buildStructural(rotConstraint)
	} else {
		b.buildGeneral()
	}
	return b.finalize(), nil
}

// buildGeneral walks all three of (α, β, γ) bit by bit, in lock step.
func (b *tableBuilder) buildGeneral() {
	var walk func(k int, alpha, beta, gamma uint32)
	walk = func(k int, alpha, beta, gamma uint32) {
		if k == b.width {
			b.entries = append(b.entries, Entry{Alpha: alpha, Beta: beta, Gamma: gamma, Weight: b.prefixWeight(alpha, beta, gamma, k)})
			return
		}
		bit := uint32(1) << uint(k)
		for _, av := range [2]uint32{0, bit} {
			for _, bv := range [2]uint32{0, bit} {
				for _, gv := range [2]uint32{0, bit} {
					na, nb, ng := alpha|av, beta|bv, gamma|gv
					w := b.prefixWeight(na, nb, ng, k+1)
					if !arxop.Feasible(w) || w > b.thresh {
						continue
					}
					walk(k+1, na, nb, ng)
				}
			}
		}
	}
	walk(0, 0, 0, 0)
}

// buildStructural fixes β = rotl(α, r) for every α in turn, then
// bit-recurses on γ alone, pruned the same way.
func (b *tableBuilder) buildStructural(r int) {
	top := maskBits(b.width)
	var walkGamma func(k int, alpha, beta, gamma uint32)
	walkGamma = func(k int, alpha, beta, gamma uint32) {
		if k == b.width {
			b.entries = append(b.entries, Entry{Alpha: alpha, Beta: beta, Gamma: gamma, Weight: b.prefixWeight(alpha, beta, gamma, k)})
			return
		}
		bit := uint32(1) << uint(k)
		for _, gv := range [2]uint32{0, bit} {
			ng := gamma | gv
			w := b.prefixWeight(alpha, beta, ng, k+1)
			if !arxop.Feasible(w) || w > b.thresh {
				continue
			}
			walkGamma(k+1, alpha, beta, ng)
		}
	}

	for alpha := uint32(0); ; alpha++ {
		beta := rotlN(alpha, r, b.width)
		walkGamma(0, alpha, beta, 0)
		if alpha == top {
			break
		}
	}
}

func (b *tableBuilder) prefixWeight(alpha, beta, gamma uint32, k int) arxop.Weight {
	m := maskBits(k)
	return arxop.XDPAddN(alpha&m, beta&m, gamma&m, k)
}

func (b *tableBuilder) finalize() *Table {
	t := &Table{
		width:   b.width,
		thresh:  b.thresh,
		entries: b.entries,
		byPair:  make(map[pairKey][]int32, len(b.entries)),
		byGamma: make(map[uint32][]int32, len(b.entries)),
		byAlpha: make(map[uint32][]int32, len(b.entries)),
	}
	for i, e := range b.entries {
		idx := int32(i)
		key := makePairKey(e.Alpha, e.Beta)
		t.byPair[key] = append(t.byPair[key], idx)
		t.byGamma[e.Gamma] = append(t.byGamma[e.Gamma], idx)
		t.byAlpha[e.Alpha] = append(t.byAlpha[e.Alpha], idx)
	}
	return t
}
