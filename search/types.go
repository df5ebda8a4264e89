package search

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/neoalzette"
)

// pollInterval is the node-count sampling interval for time-budget
// checks: every 2^18 nodes, matching the engine's own polling
// cadence rather than the teacher's denser 4096-node interval, since a
// single search node here does far more work than one TSP branch step.
const pollInterval = 1 << 18

// noIncumbentWeight stands in for "no trail has been committed yet" in
// Context.bestKnown: a very large, but still ordinary, Weight value so
// every pruning comparison behaves as "nothing to prune against", unlike
// arxop.Infeasible (math.MinInt32), which means the opposite (a
// transition that can never happen) and would make every accumulated
// weight look "already worse than the incumbent".
const noIncumbentWeight arxop.Weight = 1 << 30

// Default knobs.
const (
	// DefaultTopK bounds the number of addition/subtraction candidates
	// kept per linear-search step after heuristic ordering.
	DefaultTopK = 200

	// DefaultCacheCapacity bounds a search Context's per-run injection
	// cache, independent of neoalzette.DefaultCacheCapacity.
	DefaultCacheCapacity = 4096
)

// Config configures one top-level Differential or Linear call. Zero
// value is not meaningful; use DefaultConfig() and override fields.
type Config struct {
	// Rounds is the number of round bodies to walk. Must be >= 1.
	Rounds int

	// FinalLinearLayer enables the optional round-boundary linear layer
	// (L2Inverse/L2InverseTranspose) on the last round only, mirroring
	// neoalzette.ForwardRound/BackwardRound's own parameter.
	FinalLinearLayer bool

	// AddWeightCap bounds the weight of a first/second addition
	// candidate kept during bit-recursion enumeration, in [0, 31].
	// Zero means unbounded.
	AddWeightCap int

	// SubWeightCap bounds the weight of a constant-subtraction
	// candidate, in [0, 32]. Zero means unbounded.
	SubWeightCap int

	// MaxSubCandidates caps how many constant-subtraction candidates
	// the bit-recursion enumerator keeps per step. Zero means unbounded.
	MaxSubCandidates int

	// MaxInjectionOutputs caps how many coset elements an injection
	// step enumerates. Zero means exhaustive.
	MaxInjectionOutputs int

	// MaxNodes caps the number of DFS nodes visited. Zero means
	// unlimited.
	MaxNodes int64

	// MaxSeconds caps wall-clock search time. Zero means unlimited.
	MaxSeconds float64

	// TargetWeight stops the search as soon as a trail at or below this
	// weight is found. Negative disables the target (search runs to
	// exhaustion or budget).
	TargetWeight int

	// EnableMemo toggles the (round_index, packed(ΔA,ΔB)) memoization
	// table. Disabling it never changes the reported best weight, only
	// the work needed to find it (scenario S5/property P9).
	EnableMemo bool

	// MemoCapacity bounds the memoization table's entry count; once it
	// is full, new keys are not recorded. Zero selects DefaultMemoCapacity.
	MemoCapacity int

	// EnableLowerBound toggles the optional remaining-round lower-bound
	// pruning check (acc_weight + RemainingLowerBound[r-depth] >=
	// best_weight). When false, the bound degrades to "no bound",
	// mirroring the teacher's NoBound policy.
	EnableLowerBound bool

	// RemainingLowerBound[k] is a true lower bound on the weight
	// contributed by any k further rounds; RemainingLowerBound[0] must
	// be 0. Ignored when EnableLowerBound is false. A nil table with
	// EnableLowerBound true is treated as all-zero (no pruning power,
	// but never unsound).
	RemainingLowerBound []arxop.Weight

	// TopK bounds the number of heuristically ordered addition/
	// subtraction candidates kept per linear-search step. Linear-only;
	// ignored by Differential. Zero or negative selects DefaultTopK.
	TopK int

	// CacheCapacity bounds the per-run injection transition cache. Zero
	// selects DefaultCacheCapacity.
	CacheCapacity int

	// Seed optionally supplies an externally computed upper bound
	// (weight and trail) that overrides GreedyUpperBound's own result
	// when strictly tighter.
	Seed *Trail

	// Progress is an optional sink for plain text progress lines; nil is
	// treated as io.Discard. The searches in this module do not write
	// anything to it.
	Progress io.Writer

	// Checkpoint, if non-nil, receives one write per strictly
	// improving incumbent found during the search.
	Checkpoint *Checkpoint
}

// DefaultConfig returns a fully populated Config with conservative,
// production-ready defaults: memoization and the remaining-round lower
// bound both enabled, no candidate caps, no node/time budget, no target
// weight, top-200 linear shortlist.
func DefaultConfig(rounds int) Config {
	return Config{
		Rounds:              rounds,
		FinalLinearLayer:    false,
		AddWeightCap:        0,
		SubWeightCap:        0,
		MaxSubCandidates:    0,
		MaxInjectionOutputs: 0,
		MaxNodes:            0,
		MaxSeconds:          0,
		TargetWeight:        -1,
		EnableMemo:          true,
		MemoCapacity:        0,
		EnableLowerBound:    true,
		RemainingLowerBound: nil,
		TopK:                DefaultTopK,
		CacheCapacity:       0,
		Seed:                nil,
		Progress:            io.Discard,
		Checkpoint:          nil,
	}
}

// Validate rejects shapes the search cannot act on. It is the single
// INVALID_ARGUMENT boundary check: everything past it runs to
// completion or a cooperative budget stop, never a panic or a returned
// mid-search error.
func (c Config) Validate() error {
	if c.Rounds < 1 {
		return ErrRounds
	}
	if c.MaxNodes < 0 || c.MaxSeconds < 0 {
		return ErrNegativeBudget
	}
	return nil
}

func (c Config) memoCapacity() int {
	if c.MemoCapacity > 0 {
		return c.MemoCapacity
	}
	return DefaultMemoCapacity
}

func (c Config) cacheCapacity() int {
	if c.CacheCapacity > 0 {
		return c.CacheCapacity
	}
	return DefaultCacheCapacity
}

func (c Config) progress() io.Writer {
	if c.Progress == nil {
		return io.Discard
	}
	return c.Progress
}

func (c Config) topK() int {
	if c.TopK > 0 {
		return c.TopK
	}
	return DefaultTopK
}

func (c Config) remainingLowerBound(k int) arxop.Weight {
	if !c.EnableLowerBound || k < 0 || k >= len(c.RemainingLowerBound) {
		return 0
	}
	return c.RemainingLowerBound[k]
}

// TrailStep records one round's contribution to a Trail: the branch
// difference/mask pair entering the round, the pair leaving it, and the
// weight accrued by that round's weighted sub-steps.
type TrailStep struct {
	RoundIndex int
	InA, InB   uint32
	OutA, OutB uint32
	Weight     arxop.Weight
}

// Trail is an ordered sequence of round steps whose TotalWeight is the
// sum of each step's Weight, chained so step i's OutA/OutB equals step
// i+1's InA/InB.
type Trail struct {
	Steps       []TrailStep
	TotalWeight arxop.Weight
}

// clone returns a deep copy safe to stash as a new incumbent while the
// DFS continues mutating its own working trail.
func (t Trail) clone() Trail {
	steps := make([]TrailStep, len(t.Steps))
	copy(steps, t.Steps)
	return Trail{Steps: steps, TotalWeight: t.TotalWeight}
}

// Result is the outcome record of one Differential or Linear call.
type Result struct {
	Found        bool
	BestWeight   arxop.Weight
	BestTrail    Trail
	NodesVisited int64
	HitNodeLimit bool
	HitTimeLimit bool
}

// Context carries the mutable state of one top-level search call: its
// run identity, memoization table, node counter, and optional
// checkpoint/progress sinks. A Context is created fresh per call and is
// not safe for concurrent reuse across overlapping Differential/Linear
// calls; each call constructs its own.
type Context struct {
	RunID uuid.UUID

	cfg   Config
	memo  *Memo
	cache *neoalzette.InjectionCache

	nodesVisited int64
	stop         bool
	hitNodeLimit bool
	hitTimeLimit bool

	startTime time.Time
	deadline  time.Time
	useClock  bool

	best      Trail
	bestKnown arxop.Weight
	foundAny  bool
}

// pollDue reports whether this is a sampling node: every pollInterval
// nodes, matching the engine's own 2^18-node polling cadence.
func (ctx *Context) pollDue() bool {
	return ctx.nodesVisited&(pollInterval-1) == 0
}
