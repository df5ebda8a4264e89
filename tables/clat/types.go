package clat

// Entry is one recorded m-bit chunk transition: output mask u, second
// input mask w, correlation weight, and the outgoing connection bit fed
// to the next (lower) chunk during recombination.
type Entry struct {
	U, W       uint32
	Weight     int
	ConnStatus int
}

// Table is an immutable, bucket-indexed collection of m-bit addition
// mask transitions, one bucket per (v, incoming-carry-bit) pair. Since
// the bucket key space (v in [0, 2^m), b in {0, 1}) is small and dense,
// buckets are addressed arithmetically into one flat backing slice
// (bucketIndex(v,b) = int(v)*2+b), the same flat-row-major discipline
// as matrix.Dense and pddt.Table, rather than hashed.
//
// A Table returned by Build is never mutated again and is safe to read
// from multiple goroutines concurrently.
type Table struct {
	m         int
	entries   []Entry
	offsets   []int32 // length maskSize*2+1; bucket i occupies entries[offsets[i]:offsets[i+1]]
	minWeight []int   // length maskSize*2
}

func bucketIndex(v uint32, b int) int { return int(v)*2 + b }

// Width reports the chunk bit width this table was built for.
func (t *Table) Width() int { return t.m }

// Len reports the total number of recorded entries across all buckets.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns every recorded (u, w, weight, connStatus) transition
// for the bucket (v, b), sorted by ascending weight.
func (t *Table) Entries(v uint32, b int) []Entry {
	if b < 0 || b > 1 {
		return nil
	}
	i := bucketIndex(v, b)
	if i+1 >= len(t.offsets) {
		return nil
	}
	return t.entries[t.offsets[i]:t.offsets[i+1]]
}

// MinWeight returns the lowest weight recorded for bucket (v, b), or m
// (the worst possible weight for an m-bit chunk) if the bucket is
// empty.
func (t *Table) MinWeight(v uint32, b int) int {
	if b < 0 || b > 1 {
		return t.m
	}
	i := bucketIndex(v, b)
	if i >= len(t.minWeight) {
		return t.m
	}
	return t.minWeight[i]
}
