package pddt

import (
	"sort"

	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
)

// Entry is one recorded (α, β, γ) addition differential at or below the
// table's weight threshold.
type Entry struct {
	Alpha, Beta, Gamma uint32
	Weight             arxop.Weight
}

// pairKey packs (α, β) into one lookup key for the by-(α,β) index.
type pairKey uint64

func makePairKey(alpha, beta uint32) pairKey {
	return pairKey(uint64(alpha)<<32 | uint64(beta))
}

// Table is an immutable, indexed collection of addition differential
// triples, backed by one flat row-major slice (the same flat-storage
// discipline as matrix.Dense, generalized from scalar cells to structured
// Entry values) with three hash indices over it: by (α, β), by γ and by α.
//
// A Table returned by Build is never mutated again and is safe to read
// from multiple goroutines concurrently.
type Table struct {
	width   int
	thresh  arxop.Weight
	entries []Entry

	byPair  map[pairKey][]int32
	byGamma map[uint32][]int32
	byAlpha map[uint32][]int32
}

// Width reports the bit width this table was built for.
func (t *Table) Width() int { return t.width }

// Threshold reports the weight ceiling this table was built with.
func (t *Table) Threshold() arxop.Weight { return t.thresh }

// Len reports the number of recorded triples.
func (t *Table) Len() int { return len(t.entries) }

// All returns the table's entries as a read-only slice. Callers must not
// mutate the returned slice's backing array.
func (t *Table) All() []Entry { return t.entries }

// ByPair returns every recorded triple sharing the given (α, β), in the
// order Build appended them (its depth-first, low-bit-first walk). That
// order is not sorted by weight; BestForPair scans for the minimum.
func (t *Table) ByPair(alpha, beta uint32) []Entry {
	idx := t.byPair[makePairKey(alpha, beta)]
	return t.collect(idx)
}

// ByGamma returns every recorded triple sharing the given γ.
func (t *Table) ByGamma(gamma uint32) []Entry {
	idx := t.byGamma[gamma]
	return t.collect(idx)
}

// ByAlpha returns every recorded triple sharing the given α.
func (t *Table) ByAlpha(alpha uint32) []Entry {
	idx := t.byAlpha[alpha]
	return t.collect(idx)
}

// ContainsOutput reports whether gamma appears as some recorded
// triple's output difference — the highway-membership test Matsui
// Algorithm 2's country-roads condition uses to check that a candidate
// transition leads back into the highway network.
func (t *Table) ContainsOutput(gamma uint32) bool {
	return len(t.byGamma[gamma]) > 0
}

// DistinctGammas returns every distinct output difference the table
// records, sorted ascending. The country-roads search uses this as the
// bounded candidate set its condition 2 (α_{r−1} + β_r ∈ H) restricts
// β_r to: for each γ here, exactly one β_r = γ − α_{r−1} satisfies that
// condition, so ranging over this set rather than all 2^32 β values is
// exact, not approximate.
func (t *Table) DistinctGammas() []uint32 {
	out := make([]uint32, 0, len(t.byGamma))
	for gamma := range t.byGamma {
		out = append(out, gamma)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (t *Table) collect(idx []int32) []Entry {
	if len(idx) == 0 {
		return nil
	}
	out := make([]Entry, len(idx))
	for i, j := range idx {
		out[i] = t.entries[j]
	}
	return out
}

// BestForPair returns the lowest-weight triple recorded for (α, β), if
// any.
func (t *Table) BestForPair(alpha, beta uint32) (Entry, bool) {
	idx := t.byPair[makePairKey(alpha, beta)]
	if len(idx) == 0 {
		return Entry{}, false
	}
	best := t.entries[idx[0]]
	for _, j := range idx[1:] {
		if t.entries[j].Weight < best.Weight {
			best = t.entries[j]
		}
	}
	return best, true
}
