package pddt

import (
	"sort"
	"time"

	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/search"
)

const pollInterval = 1 << 18

// thresholdEngine runs Matsui's three-phase Highways/Country-Roads
// search over one fixed Table, mirroring package search's own
// ddfsEngine shape (explicit struct, sparse deadline polling,
// commit-on-strict-improvement) while walking Table entries and
// on-demand country-roads candidates instead of neoalzette.RoundSteps.
type thresholdEngine struct {
	table *Table
	cfg   search.Config

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

// ThresholdSearch runs Matsui Algorithm 2 over table for cfg.Rounds
// rounds:
//
//  1. Rounds 1–2 choose (α, β, γ) freely from table.
//  2. Rounds 3..cfg.Rounds-1 fix α_r = α_{r-2} + β_{r-1} (mod 2^32, the
//     standard forwards-linked addition chaining between rounds), derive
//     every candidate β_r not necessarily in table whose forward link
//     α_{r-1}+β_r still lands on one of table's recorded outputs, and
//     search both table's α_r-indexed entries and that candidate set.
//  3. Round cfg.Rounds computes α_n the same way; if α_n appears in
//     table as some entry's α, the lowest-weight such entry is used,
//     otherwise the single transition (α_n, β_n = 0 → α_n) is used at
//     its xdp-add weight, the Hamming weight of α_n below its top bit
//     (a zero β still lets each active bit of α_n flip a carry). No
//     other β_n is tried in that case, so the fallback is not an
//     optimum over all β_n.
//
// cfg.RemainingLowerBound[k] supplies B̂, a lower bound on the weight
// contributed by any k further rounds, used for the same pruning role
// package search's own remaining-round lower bound serves.
func ThresholdSearch(table *Table, cfg search.Config) (search.Result, error) {
	if err := cfg.Validate(); err != nil {
		return search.Result{}, err
	}
	if table == nil || table.Len() == 0 {
		return search.Result{}, ErrNoHighway
	}

	e := &thresholdEngine{
		table:     table,
		cfg:       cfg,
		working:   make([]search.TrailStep, cfg.Rounds),
		bestKnown: 1 << 30,
		startTime: time.Now(),
	}
	if cfg.MaxSeconds > 0 {
		e.useClock = true
		e.deadline = e.startTime.Add(time.Duration(cfg.MaxSeconds * float64(time.Second)))
	}

	e.searchRound(0, 0)

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

func (e *thresholdEngine) node() bool {
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

func (e *thresholdEngine) commit(weight arxop.Weight) {
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

// searchRound explores round r (0-indexed; paper's round r+1), having
// already committed rounds [0, r) into e.working.
func (e *thresholdEngine) searchRound(r int, acc arxop.Weight) {
	if !e.node() {
		return
	}
	if e.foundAny && acc >= e.bestKnown {
		return
	}
	if remaining := remainingBound(e.cfg, e.cfg.Rounds-r); acc+remaining >= e.bestKnown && e.foundAny {
		return
	}
	if r == e.cfg.Rounds {
		e.commit(acc)
		return
	}

	switch {
	case r < 2:
		e.tryEntries(r, acc, e.table.All())
	case r == e.cfg.Rounds-1:
		e.finalRound(r, acc)
	default:
		alphaR := e.linkedAlpha(r)
		candidates := append(append([]Entry{}, e.table.ByAlpha(alphaR)...), e.countryRoads(alphaR, r)...)
		e.tryEntries(r, acc, candidates)
	}
}

// linkedAlpha computes α_r = α_{r-2} + β_{r-1} from the already
// committed working trail (0-indexed: round r needs working[r-2].InA
// and working[r-1].InB).
func (e *thresholdEngine) linkedAlpha(r int) uint32 {
	return e.working[r-2].InA + e.working[r-1].InB
}

func (e *thresholdEngine) tryEntries(r int, acc arxop.Weight, entries []Entry) {
	for _, ent := range entries {
		if e.stop {
			return
		}
		if !arxop.Feasible(ent.Weight) {
			continue
		}
		e.working[r] = search.TrailStep{
			RoundIndex: r,
			InA:        ent.Alpha, InB: ent.Beta,
			OutA: ent.Gamma, OutB: 0,
			Weight: ent.Weight,
		}
		e.searchRound(r+1, acc+ent.Weight)
	}
}

// countryRoads builds the exact condition-2-restricted candidate set:
// β_r such that α_{r-1} + β_r lands on some γ already recorded in
// table. Table.DistinctGammas gives every such γ, so for each one the
// matching β_r = γ − α_{r-1} is derived directly rather than guessed —
// the candidate set is bounded by |table|'s distinct outputs, not by
// 2^32 over all possible β. Each derived β_r is then scored with its
// own best γ via arxop.OptimalGamma (which may differ from the γ used
// to derive it) and kept only when that transition is feasible.
func (e *thresholdEngine) countryRoads(alphaR uint32, r int) []Entry {
	alphaPrev := e.working[r-1].InA

	var out []Entry
	for _, gamma := range e.table.DistinctGammas() {
		beta := gamma - alphaPrev
		bestGamma, w := arxop.OptimalGamma(alphaR, beta, 32)
		if !arxop.Feasible(w) {
			continue
		}
		out = append(out, Entry{Alpha: alphaR, Beta: beta, Gamma: bestGamma, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Weight < out[j].Weight })
	return out
}

// finalRound computes α_n the same way as every other linked round,
// then either restricts the choice to table's α_n-indexed entries (if
// any exist) or falls back to the single candidate β_n = 0, γ_n = α_n,
// weighted by arxop.XDPAdd.
func (e *thresholdEngine) finalRound(r int, acc arxop.Weight) {
	alphaN := e.linkedAlpha(r)

	if entries := e.table.ByAlpha(alphaN); len(entries) > 0 {
		e.tryEntries(r, acc, entries)
		return
	}
	e.tryEntries(r, acc, []Entry{{Alpha: alphaN, Beta: 0, Gamma: alphaN, Weight: arxop.XDPAdd(alphaN, 0, alphaN)}})
}
