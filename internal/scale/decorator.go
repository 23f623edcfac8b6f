package scale

import (
	"errors"
	"fmt"
	"slices"

	"swatch/internal/hsb"
)

var ErrValueNotFound = errors.New("value not found")

// Swatch is one presentation row: a value and the colour it is drawn with.
type Swatch struct {
	Value   string    `json:"value"`
	Hex     string    `json:"hex"`
	R       uint8     `json:"r"`
	G       uint8     `json:"g"`
	B       uint8     `json:"b"`
	HSB     hsb.Color `json:"hsb"`
	Tooltip string    `json:"tooltip"`
}

func NewSwatch(value string, color hsb.Color) Swatch {
	r, g, b := color.RGB()
	return Swatch{
		Value:   value,
		Hex:     color.Hex(),
		R:       r,
		G:       g,
		B:       b,
		HSB:     color,
		Tooltip: fmt.Sprintf("RGB value: %d, %d, %d", r, g, b),
	}
}

// Decorator pairs an axis configuration with the ordered values it colours.
// Colours are positional and never stored.
type Decorator struct {
	Config Config
	Values []string
}

func NewDecorator(config Config, values []string) *Decorator {
	return &Decorator{Config: config.Normalized(), Values: slices.Clone(values)}
}

func (d *Decorator) ColorAt(index int) (hsb.Color, error) {
	return d.Config.ColorAt(index, len(d.Values))
}

// ColorFor returns the colour of the first occurrence of value.
func (d *Decorator) ColorFor(value string) (hsb.Color, error) {
	index := slices.Index(d.Values, value)
	if index < 0 {
		return hsb.Color{}, fmt.Errorf("colour for %q: %w", value, ErrValueNotFound)
	}

	return d.ColorAt(index)
}

func (d *Decorator) Reorder(from int, to int) error {
	return Reorder(d.Values, from, to)
}

func (d *Decorator) Swatches() []Swatch {
	colors := d.Config.Colors(len(d.Values))
	swatches := make([]Swatch, len(colors))
	for index, color := range colors {
		swatches[index] = NewSwatch(d.Values[index], color)
	}

	return swatches
}

// IsPermutation reports whether candidate holds exactly the elements of
// values, each as many times, in any order.
func IsPermutation(values []string, candidate []string) bool {
	if len(values) != len(candidate) {
		return false
	}

	counts := make(map[string]int, len(values))
	for _, value := range values {
		counts[value]++
	}
	for _, value := range candidate {
		counts[value]--
		if counts[value] < 0 {
			return false
		}
	}

	return true
}
