package search

import "github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"

// maskN returns the low n bits set, for n in [1, 32]. Duplicated locally
// rather than imported, matching bitops and arxop's own per-package
// mask helper.
func maskN(n int) uint32 {
	if n >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << uint(n)) - 1
}

// prefixScorer evaluates the weight of a candidate output word truncated
// to its low n bits, given the two fixed input words u, v also truncated
// to n bits. Both arxop.XDPAddN and arxop.BvWeightAdd/BvWeightSub carry
// values only upward from low bits to high bits, so restricting all
// three words to a common low-bit prefix and asking for that prefix's
// weight under bit width n yields a true partial weight: the same value
// the full-width computation would commit to for those bits, regardless
// of what the remaining high bits turn out to be. That monotone-prefix
// property is what lets bit-recursion prune a candidate before its
// high bits are even decided.
type prefixScorer func(u, v, cand uint32, n int) arxop.Weight

// enumerateCandidates walks the n-bit candidates for cand in order of
// bitwise closeness to preferred (preferred itself is visited first),
// depth-first over one bit per level, pruning a branch the moment its
// low-k-bit prefix weight is infeasible or exceeds weightCap. It never
// recurses: level state is held in fixed-size local arrays, giving it a
// hard stack depth of n+1 with no per-call heap allocation, matching the
// iterative shape of the round-level search it is called from.
//
// visit is called with each full n-bit candidate and its exact weight,
// in preference order; returning false stops enumeration early, as does
// reaching maxCandidates (zero means unbounded).
func enumerateCandidates(u, v, preferred uint32, n int, weightCap arxop.Weight, maxCandidates int, score prefixScorer, visit func(cand uint32, w arxop.Weight) bool) {
	if n <= 0 || n > 32 {
		return
	}

	var tried [33]uint8
	var cand uint32
	count := 0
	level := 0

	for level >= 0 {
		if level == n {
			w := score(u, v, cand, n)
			if arxop.Feasible(w) && w <= weightCap {
				count++
				keepGoing := visit(cand, w)
				if !keepGoing || (maxCandidates > 0 && count >= maxCandidates) {
					return
				}
			}
			level--
			continue
		}

		t := tried[level]
		if t >= 2 {
			tried[level] = 0
			level--
			continue
		}

		prefBit := (preferred >> uint(level)) & 1
		var bit uint32
		if t == 0 {
			bit = prefBit
		} else {
			bit = prefBit ^ 1
		}
		tried[level]++

		if bit == 1 {
			cand |= uint32(1) << uint(level)
		} else {
			cand &^= uint32(1) << uint(level)
		}

		k := level + 1
		m := maskN(k)
		pw := score(u&m, v&m, cand&m, k)
		if !arxop.Feasible(pw) || pw > weightCap {
			continue
		}
		level++
	}
}

// additionScorer adapts arxop.XDPAddN to the prefixScorer shape: u is the
// target branch's incoming difference, v is the deterministic rotated
// term, cand is the candidate outgoing difference.
func additionScorer(u, v, cand uint32, n int) arxop.Weight {
	return arxop.XDPAddN(u, v, cand, n)
}

// subtractionScorer adapts arxop.BvWeightSub to the prefixScorer shape:
// u is the target branch's incoming difference, v carries the round
// constant being subtracted, cand is the candidate outgoing difference.
func subtractionScorer(u, constant, cand uint32, n int) arxop.Weight {
	return arxop.BvWeightSub(u, cand, constant, n)
}

// effectiveCap folds a configured cap (0 meaning "unbounded" in Config)
// together with the remaining search budget (bestKnown - acc - 1, the
// largest weight a candidate can carry and still possibly beat the
// incumbent) into the single cap value enumerateCandidates needs. A
// budget at or below the configured cap always wins, since nothing
// wider than the budget could ever improve on the current incumbent —
// the configured cap only ever narrows, never widens, the search.
func effectiveCap(configCap int, acc, bestKnown arxop.Weight) arxop.Weight {
	budget := bestKnown - acc - 1
	if configCap > 0 && arxop.Weight(configCap) < budget {
		return arxop.Weight(configCap)
	}
	return budget
}
