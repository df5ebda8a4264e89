package search

import (
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/neoalzette"
)

// GreedyUpperBound walks cfg.Rounds rounds along the greedy path
// (neoalzette.ForwardRound's own choices: LM-2001-optimal output
// difference for every addition, unchanged difference for every
// constant-subtraction, the injection transition's offset for every
// injection) starting from (initA, initB), and returns the resulting
// trail. It seeds a Differential search's incumbent before the DFS
// begins; an infeasible greedy path (ok == false at some round) yields a
// Trail with TotalWeight == arxop.Infeasible, signaling "no seed
// available" to the caller rather than a usable bound.
func GreedyUpperBound(cfg Config, initA, initB uint32) Trail {
	cache := neoalzette.NewInjectionCache()
	a, b := initA, initB
	trail := Trail{Steps: make([]TrailStep, 0, cfg.Rounds)}

	for r := 0; r < cfg.Rounds; r++ {
		final := cfg.FinalLinearLayer && r == cfg.Rounds-1
		outA, outB, w, ok := neoalzette.ForwardRound(a, b, r, cache, final)
		if !ok {
			return Trail{TotalWeight: arxop.Infeasible}
		}
		trail.Steps = append(trail.Steps, TrailStep{
			RoundIndex: r,
			InA:        a, InB: b,
			OutA: outA, OutB: outB,
			Weight: w,
		})
		trail.TotalWeight += w
		a, b = outA, outB
	}
	return trail
}
