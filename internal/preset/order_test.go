package preset

import (
	"reflect"
	"testing"

	"swatch/internal/scale"
)

func TestApplyOrderIsPermutationOfCurrent(t *testing.T) {
	t.Parallel()

	current := []string{"a", "b", "c", "d", "b"}
	preferred := []string{"d", "z", "b", "a"}

	ordered := ApplyOrder(current, preferred)
	if !reflect.DeepEqual(ordered, []string{"d", "b", "a", "c", "b"}) {
		t.Fatalf("unexpected order %v", ordered)
	}
	if !scale.IsPermutation(current, ordered) {
		t.Fatalf("expected %v to be a permutation of %v", ordered, current)
	}
}

func TestApplyOrderWithoutPreference(t *testing.T) {
	t.Parallel()

	current := []string{"x", "y"}
	if ordered := ApplyOrder(current, nil); !reflect.DeepEqual(ordered, current) {
		t.Fatalf("expected current order, got %v", ordered)
	}
}
