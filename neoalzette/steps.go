package neoalzette

// StepKind identifies the operation a Step performs on the round state.
type StepKind uint8

const (
	// StepAdd applies target += T, T derived from the other branch's
	// current value via a fixed rotate-XOR combination. Weighted via
	// arxop's addition operators.
	StepAdd StepKind = iota
	// StepSubConst applies target -= RC for a fixed round constant RC.
	// Weighted via arxop's constant-subtraction operators.
	StepSubConst
	// StepMix applies target ^= rotl(other, Rot), a deterministic,
	// weight-free XOR/rotate combination.
	StepMix
	// StepInject applies target ^= Injector(source), a cross-branch
	// affine-subspace injection. Weighted by the injection's transition
	// rank.
	StepInject
	// StepLinear applies target = LinearFn(target), a deterministic,
	// weight-free XOR-rotate diffusion layer.
	StepLinear
)

// Step describes one operation of a NeoAlzette round against two named
// branches, 'A' and 'B'. Only TargetBranch and the fields relevant to
// Kind are populated; the rest are zero. Step is a plain description —
// applying it (deterministically, or by enumeration under a weight
// budget) is the caller's responsibility. ForwardRound/BackwardRound
// apply the greedy/deterministic path; package search enumerates the
// weighted kinds (StepAdd, StepSubConst, StepInject) under a budget.
type Step struct {
	Kind         StepKind
	TargetBranch byte

	// StepAdd, StepMix: the other branch supplying the rotated operand.
	SourceBranch byte

	// StepAdd: T = rotl(source, RotHi) ^ rotl(source, RotLo).
	RotHi, RotLo int

	// StepSubConst: target -= RC.
	RC uint32

	// StepMix: target ^= rotl(source, Rot).
	Rot int

	// StepInject: target ^= Injector(source's current value).
	Injector InjectorFunc

	// StepLinear: target = LinearFn(target). TransposeFn is LinearFn's
	// adjoint, used to pull a mask back through this step in the
	// backward/linear direction.
	LinearFn    func(uint32) uint32
	TransposeFn func(uint32) uint32
}

// RoundSteps returns the eleven-operation body of round roundIdx in
// execution order: two weighted additions, two weighted
// constant-subtractions, two cross-branch injections, four deterministic
// mixing sub-steps, and one deterministic linear-diffusion stage,
// reproducing the cipher's actual round structure bit for bit. Round
// constants are addressed modulo len(RC), so roundIdx may range over any
// non-negative round count.
func RoundSteps(roundIdx int) [11]Step {
	idx1 := ((1+2*roundIdx)%16 + 16) % 16
	idx6 := ((6+2*roundIdx)%16 + 16) % 16
	rc1 := RC[idx1]
	rc6 := RC[idx6]

	return [11]Step{
		// 1. B += rotl(A,31) ^ rotl(A,17)
		{Kind: StepAdd, TargetBranch: 'B', SourceBranch: 'A', RotHi: 31, RotLo: 17},
		// 2. A -= RC[1]
		{Kind: StepSubConst, TargetBranch: 'A', RC: rc1},
		// 3. A ^= rotl(B, R0); B ^= rotl(A, R1)
		{Kind: StepMix, TargetBranch: 'A', SourceBranch: 'B', Rot: R0},
		{Kind: StepMix, TargetBranch: 'B', SourceBranch: 'A', Rot: R1},
		// 4. A ^= InjectB2A(B)
		{Kind: StepInject, TargetBranch: 'A', SourceBranch: 'B', Injector: BranchInjectB2A},
		// 5. B = L1Inverse(B)
		{Kind: StepLinear, TargetBranch: 'B', LinearFn: L1Inverse, TransposeFn: L1InverseTranspose},
		// 6. A += rotl(B,31) ^ rotl(B,17)
		{Kind: StepAdd, TargetBranch: 'A', SourceBranch: 'B', RotHi: 31, RotLo: 17},
		// 7. B -= RC[6]
		{Kind: StepSubConst, TargetBranch: 'B', RC: rc6},
		// 8. B ^= rotl(A, R0); A ^= rotl(B, R1)
		{Kind: StepMix, TargetBranch: 'B', SourceBranch: 'A', Rot: R0},
		{Kind: StepMix, TargetBranch: 'A', SourceBranch: 'B', Rot: R1},
		// 9. B ^= InjectA2B(A)
		{Kind: StepInject, TargetBranch: 'B', SourceBranch: 'A', Injector: BranchInjectA2B},
	}
}
