package pddt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestBuildIsDeterministic checks that Build produces a byte-identical
// entry set across two calls with identical arguments — go-cmp's diff
// output pinpoints exactly which entry disagreed if the bit-recursion
// ever became iteration-order-dependent.
func TestBuildIsDeterministic(t *testing.T) {
	first, err := Build(6, 3, -1)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := Build(6, 3, -1)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	if diff := cmp.Diff(first.All(), second.All()); diff != "" {
		t.Errorf("table entries differ between identical builds (-first +second):\n%s", diff)
	}
}
