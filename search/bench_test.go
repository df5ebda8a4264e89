package search

import "testing"

func BenchmarkDifferentialOneRoundCapped(b *testing.B) {
	cfg := DefaultConfig(1)
	cfg.AddWeightCap = 4
	cfg.SubWeightCap = 4
	cfg.MaxSubCandidates = 8
	cfg.MaxInjectionOutputs = 8

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Differential(cfg, 0x1, 0x2); err != nil {
			b.Fatalf("Differential failed: %v", err)
		}
	}
}

func BenchmarkGreedyUpperBoundFourRounds(b *testing.B) {
	cfg := DefaultConfig(4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GreedyUpperBound(cfg, 0x1, 0x2)
	}
}

func BenchmarkMemoUpdateLookup(b *testing.B) {
	m := NewMemo(1 << 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Update(0, uint32(i), uint32(i*7), 0)
		m.Lookup(0, uint32(i), uint32(i*7), 0)
	}
}
