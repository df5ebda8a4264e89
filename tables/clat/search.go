package clat

import (
	"time"

	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/search"
)

// LookupAndRecombine runs Algorithm 3's Splitting-Lookup-Recombination
// procedure for one fixed full-width mask vFull, split into t
// chunks of table's width (MSB first). It descends chunk by chunk from
// the most significant (incoming connection bit always 0, since there
// is no chunk above it) down to the least significant, threading each
// chosen entry's outgoing connection bit in as the next, lower chunk's
// incoming bit, and calls yield once per completed (u, w, weight)
// recombination at or under weightCap. yield returning false stops the
// walk; a false return also short-circuits the remaining chunks at
// every enclosing level.
//
// Each bucket's entries are kept sorted by ascending weight (Build's
// own postprocessing step), so once one entry's accumulated weight
// exceeds weightCap, every later entry in that bucket would too — the
// walk breaks out of the bucket instead of scanning it to the end.
func LookupAndRecombine(table *Table, vFull uint32, t, weightCap int, yield func(u, w uint32, weight int) bool) error {
	if table == nil {
		return ErrEmptyTable
	}
	if t <= 0 || t*table.m > 32 {
		return ErrNotDivisible
	}

	m := table.m
	mask := (uint32(1) << uint(m)) - 1
	chunks := make([]uint32, t)
	for k := 0; k < t; k++ {
		chunks[k] = (vFull >> uint(k*m)) & mask
	}

	selected := make([]Entry, t)
	var walk func(k, accWeight int) bool
	walk = func(k, accWeight int) bool {
		if k < 0 {
			var u, w uint32
			for i := 0; i < t; i++ {
				u |= selected[i].U << uint(i*m)
				w |= selected[i].W << uint(i*m)
			}
			return yield(u, w, accWeight)
		}
		b := 0
		if k != t-1 {
			b = selected[k+1].ConnStatus
		}
		for _, e := range table.Entries(chunks[k], b) {
			nw := accWeight + e.Weight
			if nw > weightCap {
				break
			}
			selected[k] = e
			if !walk(k-1, nw) {
				return false
			}
		}
		return true
	}
	walk(t-1, 0)
	return nil
}

const pollInterval = 1 << 18

// slrEngine runs a round-level branch-and-bound search chaining
// LookupAndRecombine calls across rounds: round r's input mask is
// round r-1's recombined w, the same "thread the single surviving mask
// forward" convention package search's own ldfsEngine uses for its
// StepAdd/StepSubConst candidates.
type slrEngine struct {
	table *Table
	cfg   search.Config
	t     int

	working []search.TrailStep

	nodesVisited int64
	stop         bool
	hitNodeLimit bool
	hitTimeLimit bool

	startTime time.Time
	deadline  time.Time
	useClock  bool

	best      search.Trail
	bestKnown arxop.Weight
	foundAny  bool
}

// SLRSearch runs cfg.Rounds rounds of the chunked linear enumerator
// over table, starting from the 32-bit mask initV, reporting the
// lowest total weight (highest |correlation|) chain found.
func SLRSearch(table *Table, cfg search.Config, initV uint32) (search.Result, error) {
	if err := cfg.Validate(); err != nil {
		return search.Result{}, err
	}
	if table == nil || table.Len() == 0 {
		return search.Result{}, ErrEmptyTable
	}
	if 32%table.m != 0 {
		return search.Result{}, ErrNotDivisible
	}

	e := &slrEngine{
		table:     table,
		cfg:       cfg,
		t:         32 / table.m,
		working:   make([]search.TrailStep, cfg.Rounds),
		bestKnown: 1 << 30,
		startTime: time.Now(),
	}
	if cfg.MaxSeconds > 0 {
		e.useClock = true
		e.deadline = e.startTime.Add(time.Duration(cfg.MaxSeconds * float64(time.Second)))
	}

	e.searchRound(0, initV, 0)

	res := search.Result{
		Found:        e.foundAny,
		NodesVisited: e.nodesVisited,
		HitNodeLimit: e.hitNodeLimit,
		HitTimeLimit: e.hitTimeLimit,
	}
	if e.foundAny {
		res.BestWeight = e.bestKnown
		res.BestTrail = e.best
	} else {
		res.BestWeight = arxop.Infeasible
	}
	return res, nil
}

func remainingBound(cfg search.Config, k int) arxop.Weight {
	if !cfg.EnableLowerBound || k < 0 || k >= len(cfg.RemainingLowerBound) {
		return 0
	}
	return cfg.RemainingLowerBound[k]
}

func (e *slrEngine) node() bool {
	if e.stop {
		return false
	}
	e.nodesVisited++
	if e.cfg.MaxNodes > 0 && e.nodesVisited >= e.cfg.MaxNodes {
		e.hitNodeLimit = true
		e.stop = true
		return false
	}
	if e.nodesVisited&(pollInterval-1) == 0 {
		if e.useClock && !time.Now().Before(e.deadline) {
			e.hitTimeLimit = true
			e.stop = true
			return false
		}
	}
	return true
}

func (e *slrEngine) commit(weight arxop.Weight) {
	if e.foundAny && weight >= e.bestKnown {
		return
	}
	trail := search.Trail{Steps: make([]search.TrailStep, len(e.working)), TotalWeight: weight}
	copy(trail.Steps, e.working)
	e.best = trail
	e.bestKnown = weight
	e.foundAny = true
	if e.cfg.TargetWeight >= 0 && weight <= arxop.Weight(e.cfg.TargetWeight) {
		e.stop = true
	}
}

func (e *slrEngine) searchRound(r int, v uint32, acc arxop.Weight) {
	if !e.node() {
		return
	}
	if e.foundAny && acc >= e.bestKnown {
		return
	}
	if remaining := remainingBound(e.cfg, e.cfg.Rounds-r); e.foundAny && acc+remaining >= e.bestKnown {
		return
	}
	if r == e.cfg.Rounds {
		e.commit(acc)
		return
	}

	cap := e.t * e.table.m
	if e.foundAny {
		budget := e.bestKnown - acc - 1
		if budget < arxop.Weight(cap) {
			cap = int(budget)
		}
	}
	if cap < 0 {
		return
	}

	LookupAndRecombine(e.table, v, e.t, cap, func(u, w uint32, weight int) bool {
		if e.stop {
			return false
		}
		wt := arxop.Weight(weight)
		e.working[r] = search.TrailStep{RoundIndex: r, InA: v, InB: 0, OutA: u, OutB: w, Weight: wt}
		e.searchRound(r+1, w, acc+wt)
		return !e.stop
	})
}
