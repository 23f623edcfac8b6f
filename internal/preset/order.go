package preset

// ApplyOrder reorders current so that values listed in preferred come first,
// in preferred order, followed by the rest in their current order. The
// result is always a permutation of current.
func ApplyOrder(current []string, preferred []string) []string {
	remaining := make(map[string]int, len(current))
	for _, value := range current {
		remaining[value]++
	}

	ordered := make([]string, 0, len(current))
	for _, value := range preferred {
		if remaining[value] > 0 {
			remaining[value]--
			ordered = append(ordered, value)
		}
	}

	claimed := make(map[string]int, len(ordered))
	for _, value := range ordered {
		claimed[value]++
	}
	for _, value := range current {
		if claimed[value] > 0 {
			claimed[value]--
			continue
		}
		ordered = append(ordered, value)
	}

	return ordered
}
