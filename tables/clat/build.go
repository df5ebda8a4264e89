package clat

import "sort"

// Build runs Algorithm 2 (Huang & Wang): for every m-bit (v, b) with v
// ranging over [0, 2^m) and incoming carry bit b in {0, 1}, enumerate
// every (w, u) pair, simulate the m-bit carry-propagation automaton to
// derive per-bit transition states MT and a mask Z, accept the triple
// only when Property 6 holds (A &^ (A&Z) == 0 and B &^ (B&Z) == 0,
// where A = u^v, B = u^w), and record its weight and outgoing
// connection bit. Each bucket's entries are sorted by ascending weight
// once build completes, so callers (LookupAndRecombine's recursive
// descent in particular) can stop at the first weight exceeding a
// remaining budget.
func Build(m int) (*Table, error) {
	if m < 1 || m > 16 {
		return nil, ErrChunkWidth
	}
	maskSize := uint32(1) << uint(m)
	buckets := make([][]Entry, int(maskSize)*2)

	for v := uint32(0); v < maskSize; v++ {
		for b := 0; b < 2; b++ {
			for w := uint32(0); w < maskSize; w++ {
				for u := uint32(0); u < maskSize; u++ {
					entry, ok := evalChunk(m, v, uint32(b), w, u)
					if !ok {
						continue
					}
					idx := bucketIndex(v, b)
					buckets[idx] = append(buckets[idx], entry)
				}
			}
		}
	}

	return finalizeTable(m, maskSize, buckets), nil
}

// evalChunk simulates one (v, b, w, u) combination's carry automaton
// and reports whether it survives Property 6, together with its
// recorded Entry if so.
func evalChunk(m int, v, b, w, u uint32) (Entry, bool) {
	a := u ^ v
	bb := u ^ w
	c := u ^ v ^ w

	cBit := func(j int) uint32 {
		return (c >> uint(m-1-j)) & 1
	}

	mt := make([]uint32, m)
	var z uint32
	weight := 0

	if b == 1 {
		weight++
		mt[0] = 1
		z = uint32(1) << uint(m-1)
	} else {
		mt[0] = 0
		z = 0
	}

	for i := 1; i < m; i++ {
		mt[i] = (cBit(i-1) + mt[i-1]) & 1
		if mt[i] == 1 {
			weight++
			z |= uint32(1) << uint(m-1-i)
		}
	}

	f1 := a &^ (a & z)
	f2 := bb &^ (bb & z)
	if f1 != 0 || f2 != 0 {
		return Entry{}, false
	}

	connStatus := int((mt[m-1] + cBit(m-1)) & 1)
	return Entry{U: u, W: w, Weight: weight, ConnStatus: connStatus}, true
}

func finalizeTable(m int, maskSize uint32, buckets [][]Entry) *Table {
	for _, bucket := range buckets {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].Weight < bucket[j].Weight })
	}

	t := &Table{
		m:         m,
		offsets:   make([]int32, len(buckets)+1),
		minWeight: make([]int, len(buckets)),
	}
	var total int32
	for i, bucket := range buckets {
		t.offsets[i] = total
		total += int32(len(bucket))
		if len(bucket) > 0 {
			t.minWeight[i] = bucket[0].Weight
		} else {
			t.minWeight[i] = m
		}
	}
	t.offsets[len(buckets)] = total

	t.entries = make([]Entry, 0, total)
	for _, bucket := range buckets {
		t.entries = append(t.entries, bucket...)
	}
	return t
}
