package neoalzette

import "github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"

// ForwardRound applies round roundIdx to branch differences (dA, dB)
// along the greedy path used to seed a search's upper bound: additions
// choose the LM-2001 optimal output difference, constant-subtractions
// keep the difference unchanged, and injections take the transition's
// offset. finalLinearLayer applies L2Inverse to the output A branch, the
// optional round-boundary layer; passing false matches the common case
// where that layer is disabled.
//
// ok is false when any chosen step is infeasible, in which case
// outA/outB/weight carry no meaning.
func ForwardRound(dA, dB uint32, roundIdx int, cache *InjectionCache, finalLinearLayer bool) (outA, outB uint32, weight arxop.Weight, ok bool) {
	a, b := dA, dB
	steps := RoundSteps(roundIdx)

	get := func(branch byte) uint32 {
		if branch == 'A' {
			return a
		}
		return b
	}
	set := func(branch byte, v uint32) {
		if branch == 'A' {
			a = v
		} else {
			b = v
		}
	}

	var total arxop.Weight
	for _, s := range steps {
		switch s.Kind {
		case StepAdd:
			term := rotl(get(s.SourceBranch), s.RotHi) ^ rotl(get(s.SourceBranch), s.RotLo)
			gamma, w := arxop.OptimalGamma(get(s.TargetBranch), term, 32)
			if !arxop.Feasible(w) {
				return 0, 0, arxop.Infeasible, false
			}
			set(s.TargetBranch, gamma)
			total += w

		case StepSubConst:
			cur := get(s.TargetBranch)
			w := arxop.BvWeightSub(cur, cur, s.RC, 32)
			if !arxop.Feasible(w) {
				return 0, 0, arxop.Infeasible, false
			}
			total += w

		case StepMix:
			set(s.TargetBranch, get(s.TargetBranch)^rotl(get(s.SourceBranch), s.Rot))

		case StepInject:
			var t InjectionTransition
			if s.TargetBranch == 'A' {
				t = cache.B2A(get(s.SourceBranch))
			} else {
				t = cache.A2B(get(s.SourceBranch))
			}
			set(s.TargetBranch, get(s.TargetBranch)^t.Offset)
			total += arxop.Weight(t.Rank)

		case StepLinear:
			set(s.TargetBranch, s.LinearFn(get(s.TargetBranch)))
		}
	}

	if finalLinearLayer {
		a = L2Inverse(a)
	}

	return a, b, total, true
}

// BackwardRound pulls a pair of linear masks (mA, mB), known to apply at
// the output of round roundIdx, back to the masks that apply at its
// input, walking the round's eleven steps in reverse.
//
// Additions and constant-subtractions use the identity convention
// (output mask equals input mask, matching ForwardRound's "keep the
// difference unchanged" greedy choice for subtractions) and are scored
// via the exact correlation operators of package arxop. Injections
// contribute weight zero and propagate their source mask unchanged: the
// cross-branch injectors are genuinely quadratic, so their true linear
// behavior has no single affine mask-transpose; the zero-weight,
// pass-through treatment is the documented resolution for this case.
// XOR/rotate mixing and the linear-diffusion layer propagate masks
// exactly via their adjoints, with no approximation.
func BackwardRound(mA, mB uint32, roundIdx int, finalLinearLayer bool) (inA, inB uint32, weight arxop.Weight) {
	a, b := mA, mB
	if finalLinearLayer {
		a = L2InverseTranspose(a)
	}

	steps := RoundSteps(roundIdx)

	get := func(branch byte) uint32 {
		if branch == 'A' {
			return a
		}
		return b
	}
	set := func(branch byte, v uint32) {
		if branch == 'A' {
			a = v
		} else {
			b = v
		}
	}

	var total arxop.Weight
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		switch s.Kind {
		case StepAdd:
			out := get(s.TargetBranch)
			total += arxop.WeightOf(arxop.LinearCorrAddVarValue(out, out, 0))

		case StepSubConst:
			out := get(s.TargetBranch)
			total += arxop.WeightOf(arxop.LinearCorrSubConst(out, out, uint64(s.RC), 32))

		case StepMix:
			targetAfter := get(s.TargetBranch)
			set(s.SourceBranch, get(s.SourceBranch)^rotr(targetAfter, s.Rot))

		case StepInject:
			// weight 0, masks pass through unchanged.

		case StepLinear:
			set(s.TargetBranch, s.TransposeFn(get(s.TargetBranch)))
		}
	}

	return a, b, total
}
