package bitops

import "github.com/klauspost/cpuid/v2"

// Capabilities reports which hardware bit-manipulation extensions the
// running CPU exposes. It is purely informational: every function in this
// package goes through math/bits regardless of what is reported here.
// No other package in this module calls QueryCapabilities.
type Capabilities struct {
	POPCNT bool
	LZCNT  bool
	BMI1   bool
	BMI2   bool
}

// QueryCapabilities inspects the current process's CPU feature set once
// per call; the underlying cpuid.CPU struct is populated at package init
// time by github.com/klauspost/cpuid/v2 and is safe to read concurrently.
func QueryCapabilities() Capabilities {
	return Capabilities{
		POPCNT: cpuid.CPU.Supports(cpuid.POPCNT),
		LZCNT:  cpuid.CPU.Supports(cpuid.LZCNT),
		BMI1:   cpuid.CPU.Supports(cpuid.BMI1),
		BMI2:   cpuid.CPU.Supports(cpuid.BMI2),
	}
}
