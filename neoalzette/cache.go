package neoalzette

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// cacheKey packs an injector identity (B-branch vs A-branch) with its
// input difference into a single map key.
type cacheKey struct {
	branch byte
	delta  uint32
}

// SharedInjectionCache is an optional cross-thread tier for
// InjectionTransition results, backed by singleflight.Group so that many
// goroutines racing to build the transition for the same Δ collapse into
// one build, with the rest blocking on its result. Reads are a plain
// RWMutex-guarded map; a failed shared-cache insertion never affects
// correctness, only acceleration.
type SharedInjectionCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]InjectionTransition
	group   singleflight.Group
}

// NewSharedInjectionCache returns an empty shared cache.
func NewSharedInjectionCache() *SharedInjectionCache {
	return &SharedInjectionCache{entries: make(map[cacheKey]InjectionTransition)}
}

func (s *SharedInjectionCache) get(key cacheKey) (InjectionTransition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.entries[key]
	return t, ok
}

func (s *SharedInjectionCache) put(key cacheKey, t InjectionTransition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = t
}

// buildShared resolves key via singleflight, building it with f/delta at
// most once across all concurrent callers that race on the same key.
func (s *SharedInjectionCache) buildShared(key cacheKey, f InjectorFunc, delta uint32) InjectionTransition {
	if t, ok := s.get(key); ok {
		return t
	}
	sfKey := string([]byte{key.branch, byte(delta >> 24), byte(delta >> 16), byte(delta >> 8), byte(delta)})
	v, _, _ := s.group.Do(sfKey, func() (interface{}, error) {
		if t, ok := s.get(key); ok {
			return t, nil
		}
		t := BuildInjectionTransition(f, delta)
		s.put(key, t)
		return t, nil
	})
	return v.(InjectionTransition)
}

// clear drops every entry, used when the memory governor signals pressure
// and per-thread caches must be dropped.
func (s *SharedInjectionCache) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[cacheKey]InjectionTransition)
}

// InjectionCache is the per-search-context cache: a bounded per-instance
// map keyed by Δ, with an epoch counter bumped at the start of each new
// search run, plus an optional shared tier. Lookups
// check the local tier first, then the shared tier, promoting shared hits
// into the local tier; a cold lookup always yields the identical
// transition regardless of cache state (eviction never affects
// correctness, only pruning acceleration).
type InjectionCache struct {
	capacity int
	epoch    uint64
	local    map[cacheKey]localEntry
	shared   *SharedInjectionCache
}

type localEntry struct {
	epoch uint64
	t     InjectionTransition
}

// CacheOption customizes InjectionCache construction.
type CacheOption func(*InjectionCache)

// WithCapacity bounds the number of local entries retained before the
// cache silently stops inserting new ones (existing entries are still
// served). Zero or negative is a no-op, leaving the default.
func WithCapacity(n int) CacheOption {
	return func(c *InjectionCache) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithSharedTier wires a cross-thread SharedInjectionCache into the local
// cache. A nil shared cache is a no-op.
func WithSharedTier(shared *SharedInjectionCache) CacheOption {
	return func(c *InjectionCache) {
		if shared != nil {
			c.shared = shared
		}
	}
}

// DefaultCacheCapacity bounds local injection-cache entries absent an
// explicit WithCapacity override.
const DefaultCacheCapacity = 4096

// NewInjectionCache builds a per-search-context cache with the given
// options applied over production-ready defaults.
func NewInjectionCache(opts ...CacheOption) *InjectionCache {
	c := &InjectionCache{
		capacity: DefaultCacheCapacity,
		local:    make(map[cacheKey]localEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewEpoch bumps the epoch counter at the start of a new search run;
// existing entries from a prior epoch are treated as stale on next access
// rather than eagerly swept, since the table itself never changes shape
// between runs.
func (c *InjectionCache) NewEpoch() {
	c.epoch++
}

// Clear drops every local entry and, when a shared tier is wired in,
// empties that whole shared tier too, including entries other caches
// placed there.
func (c *InjectionCache) Clear() {
	c.local = make(map[cacheKey]localEntry)
	if c.shared != nil {
		c.shared.clear()
	}
}

// B2A resolves the InjectionTransition for BranchInjectB2A at input
// difference delta, checking the local tier, then the shared tier (if
// wired), falling back to a direct build.
func (c *InjectionCache) B2A(delta uint32) InjectionTransition {
	return c.resolve(cacheKey{branch: 'B', delta: delta}, BranchInjectB2A, delta)
}

// A2B resolves the InjectionTransition for BranchInjectA2B at input
// difference delta, mirroring B2A.
func (c *InjectionCache) A2B(delta uint32) InjectionTransition {
	return c.resolve(cacheKey{branch: 'A', delta: delta}, BranchInjectA2B, delta)
}

func (c *InjectionCache) resolve(key cacheKey, f InjectorFunc, delta uint32) InjectionTransition {
	if e, ok := c.local[key]; ok && e.epoch == c.epoch {
		return e.t
	}

	var t InjectionTransition
	if c.shared != nil {
		t = c.shared.buildShared(key, f, delta)
	} else {
		t = BuildInjectionTransition(f, delta)
	}

	if len(c.local) < c.capacity {
		c.local[key] = localEntry{epoch: c.epoch, t: t}
	}
	return t
}
