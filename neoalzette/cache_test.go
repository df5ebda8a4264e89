package neoalzette

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInjectionCacheMatchesDirectBuild(t *testing.T) {
	c := NewInjectionCache()
	for _, delta := range []uint32{0, 1, 0x12345678, 0xFFFFFFFF} {
		require.Equal(t, BuildInjectionTransition(BranchInjectB2A, delta), c.B2A(delta))
		require.Equal(t, BuildInjectionTransition(BranchInjectA2B, delta), c.A2B(delta))
	}
}

func TestInjectionCacheCapacityBoundsLocalEntries(t *testing.T) {
	c := NewInjectionCache(WithCapacity(1))
	c.B2A(0x1)
	c.B2A(0x2)
	require.LessOrEqual(t, len(c.local), 1)
}

func TestInjectionCacheNewEpochDoesNotChangeResults(t *testing.T) {
	c := NewInjectionCache()
	want := c.B2A(0xDEAD)
	c.NewEpoch()
	require.Equal(t, want, c.B2A(0xDEAD))
}

func TestInjectionCacheClearDoesNotChangeResults(t *testing.T) {
	c := NewInjectionCache()
	want := c.A2B(0xBEEF)
	c.Clear()
	require.Equal(t, want, c.A2B(0xBEEF))
}

func TestSharedInjectionCacheConcurrentBuildsAgree(t *testing.T) {
	shared := NewSharedInjectionCache()
	want := BuildInjectionTransition(BranchInjectB2A, 0x1234)

	const n = 8
	results := make([]InjectionTransition, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			c := NewInjectionCache(WithSharedTier(shared))
			results[i] = c.B2A(0x1234)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, want, got, "goroutine %d", i)
	}
}
