package search

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/neoalzette"
)

// ldfsEngine is Differential's ddfsEngine, mirrored for the backward
// (linear, correlation) direction: it walks rounds from cfg.Rounds-1
// down to 0, each round's eleven steps in reverse, scoring weighted
// steps via exact correlation operators over a heuristically ordered,
// top-K-bounded candidate shortlist rather than Differential's
// exhaustive, weight-capped bit-recursion — masks have no analogous
// prefix-monotone structure to bound an exhaustive walk, so the shortlist
// is the enumeration strategy itself, not an optimization over one.
type ldfsEngine struct {
	cfg     Config
	ctx     *Context
	working []TrailStep
}

// Linear runs a branch-and-bound best-trail search for the strongest
// (lowest-weight, i.e. highest |correlation|) linear trail of
// cfg.Rounds rounds, walking backward from output masks (initA, initB)
// at round cfg.Rounds to the masks applying at round 0.
func Linear(cfg Config, initA, initB uint32) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	ctx := &Context{
		RunID:     uuid.New(),
		cfg:       cfg,
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

	seed := LinearGreedyUpperBound(cfg, initA, initB)
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

	e := &ldfsEngine{cfg: cfg, ctx: ctx, working: make([]TrailStep, cfg.Rounds)}
	if !ctx.stop {
		e.exploreRound(cfg.Rounds-1, initA, initB, 0)
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

// LinearGreedyUpperBound walks cfg.Rounds rounds along neoalzette.
// BackwardRound's identity-mask convention, from output masks (initA,
// initB) back to round 0, seeding a Linear search's incumbent exactly as
// GreedyUpperBound seeds Differential's.
func LinearGreedyUpperBound(cfg Config, initA, initB uint32) Trail {
	a, b := initA, initB
	trail := Trail{Steps: make([]TrailStep, cfg.Rounds)}

	for i := 0; i < cfg.Rounds; i++ {
		roundIdx := cfg.Rounds - 1 - i
		final := cfg.FinalLinearLayer && roundIdx == cfg.Rounds-1
		inA, inB, w := neoalzette.BackwardRound(a, b, roundIdx, final)
		trail.Steps[i] = TrailStep{RoundIndex: roundIdx, InA: a, InB: b, OutA: inA, OutB: inB, Weight: w}
		trail.TotalWeight += w
		a, b = inA, inB
	}
	return trail
}

func (e *ldfsEngine) pollClock() {
	if e.ctx.useClock && !time.Now().Before(e.ctx.deadline) {
		e.ctx.hitTimeLimit = true
		e.ctx.stop = true
	}
}

// exploreRound is one depth of the backward search tree: depth counts
// rounds consumed so far (cfg.Rounds-1-roundIdx), so the same pruning,
// memoization, and commit shape as Differential's exploreRound applies
// unchanged, just walking roundIdx downward instead of upward.
func (e *ldfsEngine) exploreRound(roundIdx int, a, b uint32, acc arxop.Weight) {
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
	depth := e.cfg.Rounds - 1 - roundIdx
	if e.cfg.EnableLowerBound {
		remaining := e.cfg.remainingLowerBound(e.cfg.Rounds - depth)
		if acc+remaining >= e.ctx.bestKnown {
			return
		}
	}

	if roundIdx < 0 {
		e.commit(acc)
		return
	}

	if e.ctx.memo != nil {
		if e.ctx.memo.Lookup(roundIdx, a, b, acc) {
			return
		}
		e.ctx.memo.Update(roundIdx, a, b, acc)
	}

	final := e.cfg.FinalLinearLayer && roundIdx == e.cfg.Rounds-1
	aIn := a
	if final {
		aIn = neoalzette.L2InverseTranspose(a)
	}
	steps := neoalzette.RoundSteps(roundIdx)
	e.exploreStep(roundIdx, len(steps)-1, aIn, b, acc, a, b, &steps)
}

func (e *ldfsEngine) commit(weight arxop.Weight) {
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

// exploreStep walks one round's eleven-operation body in reverse
// execution order, mirroring neoalzette.BackwardRound step for step:
// StepAdd/StepSubConst draw a top-K heuristic mask shortlist scored by
// exact correlation, StepMix/StepLinear apply their deterministic
// adjoint, and StepInject passes its mask through unchanged at weight 0.
func (e *ldfsEngine) exploreStep(roundIdx, stepIdx int, a, b uint32, acc arxop.Weight, outA, outB uint32, steps *[11]neoalzette.Step) {
	if e.ctx.stop {
		return
	}

	if stepIdx < 0 {
		e.working[roundIdx] = TrailStep{RoundIndex: roundIdx, InA: a, InB: b, OutA: outA, OutB: outB, Weight: acc - e.roundEntryAcc(roundIdx)}
		e.exploreRound(roundIdx-1, a, b, acc)
		return
	}

	s := steps[stepIdx]
	get := func(branch byte) uint32 {
		if branch == 'A' {
			return a
		}
		return b
	}
	set := func(branch byte, v uint32) (uint32, uint32) {
		na, nb := a, b
		if branch == 'A' {
			na = v
		} else {
			nb = v
		}
		return na, nb
	}

	switch s.Kind {
	case neoalzette.StepAdd:
		cur := get(s.TargetBranch)
		cap := effectiveCap(0, acc, e.ctx.bestKnown)
		for _, m := range linearCandidates(cur, e.cfg.topK(), func(m uint32) arxop.Weight {
			return arxop.WeightOf(arxop.LinearCorrAddVarValue(m, m, 0))
		}, cap) {
			if e.ctx.stop {
				return
			}
			w := arxop.WeightOf(arxop.LinearCorrAddVarValue(m, m, 0))
			na, nb := set(s.TargetBranch, m)
			e.exploreStep(roundIdx, stepIdx-1, na, nb, acc+w, outA, outB, steps)
		}

	case neoalzette.StepSubConst:
		cur := get(s.TargetBranch)
		cap := effectiveCap(0, acc, e.ctx.bestKnown)
		score := func(m uint32) arxop.Weight {
			return arxop.WeightOf(arxop.LinearCorrSubConst(m, m, uint64(s.RC), 32))
		}
		for _, m := range linearCandidates(cur, e.cfg.topK(), score, cap) {
			if e.ctx.stop {
				return
			}
			w := score(m)
			na, nb := set(s.TargetBranch, m)
			e.exploreStep(roundIdx, stepIdx-1, na, nb, acc+w, outA, outB, steps)
		}

	case neoalzette.StepMix:
		targetAfter := get(s.TargetBranch)
		na, nb := set(s.SourceBranch, get(s.SourceBranch)^rotr32(targetAfter, s.Rot))
		e.exploreStep(roundIdx, stepIdx-1, na, nb, acc, outA, outB, steps)

	case neoalzette.StepLinear:
		na, nb := set(s.TargetBranch, s.TransposeFn(get(s.TargetBranch)))
		e.exploreStep(roundIdx, stepIdx-1, na, nb, acc, outA, outB, steps)

	case neoalzette.StepInject:
		e.exploreStep(roundIdx, stepIdx-1, a, b, acc, outA, outB, steps)
	}
}

func (e *ldfsEngine) roundEntryAcc(roundIdx int) arxop.Weight {
	var sum arxop.Weight
	for i := roundIdx + 1; i < e.cfg.Rounds; i++ {
		sum += e.working[i].Weight
	}
	return sum
}

func rotr32(x uint32, r int) uint32 {
	r &= 31
	return x>>uint(r) | x<<uint(32-r)
}

// linearCandidates builds the heuristic shortlist for one addition or
// constant-subtraction mask step: the known mask itself, its 32
// single-bit neighbours, and the low-Hamming-weight masks (the 32 single
// bit masks again, deduplicated, plus zero), scored and sorted by
// weight, keeping the best cfg.topK() within cap.
func linearCandidates(known uint32, topK int, score func(uint32) arxop.Weight, cap arxop.Weight) []uint32 {
	seen := make(map[uint32]bool, 40)
	var cands []uint32
	add := func(v uint32) {
		if !seen[v] {
			seen[v] = true
			cands = append(cands, v)
		}
	}

	add(known)
	add(0)
	for i := 0; i < 32; i++ {
		add(known ^ (uint32(1) << uint(i)))
		add(uint32(1) << uint(i))
	}

	type scored struct {
		v uint32
		w arxop.Weight
	}
	var feasible []scored
	for _, v := range cands {
		w := score(v)
		if arxop.Feasible(w) && w <= cap {
			feasible = append(feasible, scored{v, w})
		}
	}
	sort.Slice(feasible, func(i, j int) bool { return feasible[i].w < feasible[j].w })

	if len(feasible) > topK {
		feasible = feasible[:topK]
	}
	out := make([]uint32, len(feasible))
	for i, s := range feasible {
		out[i] = s.v
	}
	return out
}
