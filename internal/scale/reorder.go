package scale

import "fmt"

// Reorder moves the element at from so that it lands in front of the
// element that was at to. A to past from is shifted down by one to account
// for the removed slot; to == len(s) moves the element to the end.
//
// Invalid indices leave s untouched.
func Reorder[S ~[]E, E any](s S, from int, to int) error {
	if from < 0 || from >= len(s) {
		return fmt.Errorf("reorder from index %d: %w", from, ErrIndexOutOfRange)
	}
	if to < 0 || to > len(s) {
		return fmt.Errorf("reorder to index %d: %w", to, ErrIndexOutOfRange)
	}

	if to > from {
		to--
	}
	if to == from {
		return nil
	}

	moved := s[from]
	if to < from {
		copy(s[to+1:from+1], s[to:from])
	} else {
		copy(s[from:to], s[from+1:to+1])
	}
	s[to] = moved

	return nil
}

// InsertionIndex is the final position of a row dropped at to after being
// dragged from from.
func InsertionIndex(from int, to int) int {
	if to > from {
		return to - 1
	}

	return to
}
