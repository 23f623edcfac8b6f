package scale

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func TestReorderExamples(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to int
		expected []string
	}{
		{from: 0, to: 3, expected: []string{"B", "C", "A", "D"}},
		{from: 3, to: 0, expected: []string{"D", "A", "B", "C"}},
		{from: 0, to: 4, expected: []string{"B", "C", "D", "A"}},
		{from: 2, to: 2, expected: []string{"A", "B", "C", "D"}},
		{from: 2, to: 3, expected: []string{"A", "B", "C", "D"}},
		{from: 1, to: 0, expected: []string{"B", "A", "C", "D"}},
	}

	for _, tc := range cases {
		values := []string{"A", "B", "C", "D"}
		if err := Reorder(values, tc.from, tc.to); err != nil {
			t.Fatalf("reorder(%d, %d): %v", tc.from, tc.to, err)
		}
		if !reflect.DeepEqual(values, tc.expected) {
			t.Fatalf("reorder(%d, %d): got %v, want %v", tc.from, tc.to, values, tc.expected)
		}
	}
}

func TestReorderIsPermutationAndLandsBeforeTarget(t *testing.T) {
	t.Parallel()

	original := []string{"A", "B", "C", "D", "E"}
	for from := range original {
		for to := 0; to <= len(original); to++ {
			values := slices.Clone(original)
			if err := Reorder(values, from, to); err != nil {
				t.Fatalf("reorder(%d, %d): %v", from, to, err)
			}
			if !IsPermutation(original, values) {
				t.Fatalf("reorder(%d, %d): %v is not a permutation", from, to, values)
			}

			landed := InsertionIndex(from, to)
			if values[landed] != original[from] {
				t.Fatalf("reorder(%d, %d): expected %s at %d, got %v", from, to, original[from], landed, values)
			}
			if to < len(original) && to != from {
				if values[landed+1] != original[to] {
					t.Fatalf("reorder(%d, %d): expected %s right before %s, got %v", from, to, original[from], original[to], values)
				}
			}
		}
	}
}

func TestReorderRejectsInvalidIndices(t *testing.T) {
	t.Parallel()

	cases := [][2]int{{-1, 0}, {4, 0}, {0, 5}, {0, -1}}
	for _, tc := range cases {
		values := []string{"A", "B", "C", "D"}
		err := Reorder(values, tc[0], tc[1])
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("reorder(%d, %d): expected out of range error, got %v", tc[0], tc[1], err)
		}
		if !reflect.DeepEqual(values, []string{"A", "B", "C", "D"}) {
			t.Fatalf("reorder(%d, %d): list changed on failure: %v", tc[0], tc[1], values)
		}
	}
}

func TestReorderWorksOnAnySlice(t *testing.T) {
	t.Parallel()

	values := []int{10, 20, 30}
	if err := Reorder(values, 2, 0); err != nil {
		t.Fatalf("reorder ints: %v", err)
	}
	if !reflect.DeepEqual(values, []int{30, 10, 20}) {
		t.Fatalf("unexpected order %v", values)
	}
}
