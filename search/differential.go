package search

import (
	"time"

	"github.com/google/uuid"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/neoalzette"
)

// ddfsEngine holds the mutable state of one differential best-trail
// search call: configuration, the active Context (memo table, injection
// cache, node counter, stop flag), and a preallocated working trail
// mutated in place as the DFS descends and ascends, mirroring the
// teacher's path/visited in-place mutation rather than building new
// slices per call.
type ddfsEngine struct {
	cfg     Config
	ctx     *Context
	working []TrailStep
}

// Differential runs a branch-and-bound best-trail search for the most
// probable (lowest-weight) differential trail of cfg.Rounds rounds
// starting at the branch difference (initA, initB).
func Differential(cfg Config, initA, initB uint32) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	ctx := &Context{
		RunID:     uuid.New(),
		cfg:       cfg,
		memo:      nil,
		cache:     neoalzette.NewInjectionCache(neoalzette.WithCapacity(cfg.cacheCapacity())),
		startTime: time.Now(),
		bestKnown: noIncumbentWeight,
	}
	if cfg.EnableMemo {
		ctx.memo = NewMemo(cfg.memoCapacity())
	}
	if cfg.MaxSeconds > 0 {
		ctx.useClock = true
		ctx.deadline = ctx.startTime.Add(time.Duration(cfg.MaxSeconds * float64(time.Second)))
	}

	seed := GreedyUpperBound(cfg, initA, initB)
	if arxop.Feasible(seed.TotalWeight) {
		ctx.best = seed.clone()
		ctx.bestKnown = seed.TotalWeight
		ctx.foundAny = true
	}
	if cfg.Seed != nil && arxop.Feasible(cfg.Seed.TotalWeight) && cfg.Seed.TotalWeight < ctx.bestKnown {
		ctx.best = cfg.Seed.clone()
		ctx.bestKnown = cfg.Seed.TotalWeight
		ctx.foundAny = true
	}
	if cfg.TargetWeight >= 0 && ctx.foundAny && ctx.bestKnown <= arxop.Weight(cfg.TargetWeight) {
		ctx.stop = true
	}

	e := &ddfsEngine{
		cfg:     cfg,
		ctx:     ctx,
		working: make([]TrailStep, cfg.Rounds),
	}
	if !ctx.stop {
		e.exploreRound(0, initA, initB, 0)
	}

	res := Result{
		Found:        ctx.foundAny,
		NodesVisited: ctx.nodesVisited,
		HitNodeLimit: ctx.hitNodeLimit,
		HitTimeLimit: ctx.hitTimeLimit,
	}
	if ctx.foundAny {
		res.BestWeight = ctx.bestKnown
		res.BestTrail = ctx.best
	} else {
		res.BestWeight = arxop.Infeasible
	}
	return res, nil
}

// pollClock checks the wall-clock budget; called only at the sparse
// polling interval, since time.Now() is comparatively expensive and the
// node-count budget (a plain integer comparison) is cheap enough to
// check on every node instead.
func (e *ddfsEngine) pollClock() {
	if e.ctx.useClock && !time.Now().Before(e.ctx.deadline) {
		e.ctx.hitTimeLimit = true
		e.ctx.stop = true
	}
}

// exploreRound is one depth of the search tree: one round boundary,
// matching explore(depth, ΔA, ΔB, acc_weight) — stop conditions, the two
// pruning checks, the round-boundary commit, and memoization all live
// here; the round's internal a-j sub-step enumeration lives in
// exploreStep.
func (e *ddfsEngine) exploreRound(roundIdx int, a, b uint32, acc arxop.Weight) {
	if e.ctx.stop {
		return
	}
	e.ctx.nodesVisited++
	if e.cfg.MaxNodes > 0 && e.ctx.nodesVisited >= e.cfg.MaxNodes {
		e.ctx.hitNodeLimit = true
		e.ctx.stop = true
		return
	}
	if e.ctx.pollDue() {
		e.pollClock()
		if e.ctx.stop {
			return
		}
	}

	if acc >= e.ctx.bestKnown {
		return
	}
	if e.cfg.EnableLowerBound {
		remaining := e.cfg.remainingLowerBound(e.cfg.Rounds - roundIdx)
		if acc+remaining >= e.ctx.bestKnown {
			return
		}
	}

	if roundIdx == e.cfg.Rounds {
		e.commit(acc)
		return
	}

	if e.ctx.memo != nil {
		if e.ctx.memo.Lookup(roundIdx, a, b, acc) {
			return
		}
		e.ctx.memo.Update(roundIdx, a, b, acc)
	}

	steps := neoalzette.RoundSteps(roundIdx)
	e.exploreStep(roundIdx, 0, a, b, acc, a, b, &steps)
}

// commit records a strictly improving incumbent.
func (e *ddfsEngine) commit(weight arxop.Weight) {
	if e.ctx.foundAny && weight >= e.ctx.bestKnown {
		return
	}
	trail := Trail{Steps: make([]TrailStep, e.cfg.Rounds), TotalWeight: weight}
	copy(trail.Steps, e.working)
	e.ctx.best = trail
	e.ctx.bestKnown = weight
	e.ctx.foundAny = true

	if e.cfg.Checkpoint != nil {
		e.cfg.Checkpoint.Write(CheckpointRecord{
			RunID:        e.ctx.RunID,
			Reason:       "improved",
			Rounds:       e.cfg.Rounds,
			Trail:        trail,
			NodesVisited: e.ctx.nodesVisited,
			Elapsed:      time.Since(e.ctx.startTime),
		})
	}

	if e.cfg.TargetWeight >= 0 && weight <= arxop.Weight(e.cfg.TargetWeight) {
		e.ctx.stop = true
	}
}

// exploreStep walks one round's eleven-operation body in execution
// order, branching on the three weighted kinds (StepAdd, StepSubConst,
// StepInject) and applying the two deterministic kinds (StepMix,
// StepLinear) directly, then recursing into the next round once all
// eleven steps are consumed.
func (e *ddfsEngine) exploreStep(roundIdx, stepIdx int, a, b uint32, acc arxop.Weight, inA, inB uint32, steps *[11]neoalzette.Step) {
	if e.ctx.stop {
		return
	}

	if stepIdx == len(steps) {
		e.working[roundIdx] = TrailStep{RoundIndex: roundIdx, InA: inA, InB: inB, OutA: a, OutB: b, Weight: acc - e.roundEntryAcc(roundIdx)}
		e.exploreRound(roundIdx+1, a, b, acc)
		return
	}

	s := steps[stepIdx]
	get := func(branch byte) uint32 {
		if branch == 'A' {
			return a
		}
		return b
	}

	switch s.Kind {
	case neoalzette.StepAdd:
		target := get(s.TargetBranch)
		term := rotl32(get(s.SourceBranch), s.RotHi) ^ rotl32(get(s.SourceBranch), s.RotLo)
		preferred, _ := arxop.OptimalGamma(target, term, 32)
		cap := effectiveCap(e.cfg.AddWeightCap, acc, e.ctx.bestKnown)
		enumerateCandidates(target, term, preferred, 32, cap, 0, additionScorer, func(gamma uint32, w arxop.Weight) bool {
			if e.ctx.stop {
				return false
			}
			na, nb := a, b
			if s.TargetBranch == 'A' {
				na = gamma
			} else {
				nb = gamma
			}
			e.exploreStep(roundIdx, stepIdx+1, na, nb, acc+w, inA, inB, steps)
			return !e.ctx.stop
		})

	case neoalzette.StepSubConst:
		target := get(s.TargetBranch)
		cap := effectiveCap(e.cfg.SubWeightCap, acc, e.ctx.bestKnown)
		enumerateCandidates(target, s.RC, target, 32, cap, e.cfg.MaxSubCandidates, subtractionScorer, func(cand uint32, w arxop.Weight) bool {
			if e.ctx.stop {
				return false
			}
			na, nb := a, b
			if s.TargetBranch == 'A' {
				na = cand
			} else {
				nb = cand
			}
			e.exploreStep(roundIdx, stepIdx+1, na, nb, acc+w, inA, inB, steps)
			return !e.ctx.stop
		})

	case neoalzette.StepMix:
		na, nb := a, b
		v := get(s.TargetBranch) ^ rotl32(get(s.SourceBranch), s.Rot)
		if s.TargetBranch == 'A' {
			na = v
		} else {
			nb = v
		}
		e.exploreStep(roundIdx, stepIdx+1, na, nb, acc, inA, inB, steps)

	case neoalzette.StepLinear:
		na, nb := a, b
		v := s.LinearFn(get(s.TargetBranch))
		if s.TargetBranch == 'A' {
			na = v
		} else {
			nb = v
		}
		e.exploreStep(roundIdx, stepIdx+1, na, nb, acc, inA, inB, steps)

	case neoalzette.StepInject:
		var t neoalzette.InjectionTransition
		if s.TargetBranch == 'A' {
			t = e.ctx.cache.B2A(get(s.SourceBranch))
		} else {
			t = e.ctx.cache.A2B(get(s.SourceBranch))
		}
		w := arxop.Weight(t.Rank)
		if acc+w >= e.ctx.bestKnown {
			return
		}
		neoalzette.EnumerateReachable(t, e.cfg.MaxInjectionOutputs, func(v uint32) bool {
			if e.ctx.stop {
				return false
			}
			na, nb := a, b
			if s.TargetBranch == 'A' {
				na = get('A') ^ v
			} else {
				nb = get('B') ^ v
			}
			e.exploreStep(roundIdx, stepIdx+1, na, nb, acc+w, inA, inB, steps)
			return !e.ctx.stop
		})
	}
}

// roundEntryAcc recomputes the accumulated weight at the start of
// roundIdx from the already-committed working trail prefix, avoiding a
// second parameter threaded through every exploreStep call purely to
// remember where the round began.
func (e *ddfsEngine) roundEntryAcc(roundIdx int) arxop.Weight {
	var sum arxop.Weight
	for i := 0; i < roundIdx; i++ {
		sum += e.working[i].Weight
	}
	return sum
}

func rotl32(x uint32, r int) uint32 {
	r &= 31
	return x<<uint(r) | x>>uint(32-r)
}
