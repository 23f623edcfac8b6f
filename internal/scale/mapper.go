package scale

import (
	"errors"
	"fmt"

	"swatch/internal/hsb"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// ColorAt returns the colour assigned to position index of total values.
//
// Values fall into primary groups of SecondaryCount consecutive entries.
// The group index sweeps the primary channel across its range; the position
// inside the group sweeps both remaining channels together across theirs.
func (c Config) ColorAt(index int, total int) (hsb.Color, error) {
	if index < 0 || index >= total {
		return hsb.Color{}, fmt.Errorf("colour index %d of %d: %w", index, total, ErrIndexOutOfRange)
	}

	return c.Normalized().colorAt(index, total), nil
}

// Colors computes the colour of every position.
func (c Config) Colors(total int) []hsb.Color {
	if total <= 0 {
		return nil
	}

	normalized := c.Normalized()
	colors := make([]hsb.Color, total)
	for index := range colors {
		colors[index] = normalized.colorAt(index, total)
	}

	return colors
}

func (c Config) colorAt(index int, total int) hsb.Color {
	secondaryCount := c.SecondaryCount
	group := index / secondaryCount
	step := index % secondaryCount
	groupCount := (total + secondaryCount - 1) / secondaryCount

	primaryT := float64(group) / float64(maxInt(groupCount-1, 1))
	secondaryT := float64(step) / float64(maxInt(secondaryCount-1, 1))

	first, second := c.PrimaryAxis.Others()

	var color hsb.Color
	color.SetChannel(c.PrimaryAxis, c.Range(c.PrimaryAxis).At(primaryT))
	color.SetChannel(first, c.Range(first).At(secondaryT))
	color.SetChannel(second, c.Range(second).At(secondaryT))

	return color
}

func maxInt(left int, right int) int {
	if left > right {
		return left
	}

	return right
}
