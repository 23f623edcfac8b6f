package hsb

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Axis string

const (
	AxisHue        Axis = "hue"
	AxisSaturation Axis = "saturation"
	AxisBrightness Axis = "brightness"
)

// Axes lists the channels in assembly order.
var Axes = []Axis{AxisHue, AxisSaturation, AxisBrightness}

func ParseAxis(value string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(AxisHue):
		return AxisHue, nil
	case string(AxisSaturation):
		return AxisSaturation, nil
	case string(AxisBrightness):
		return AxisBrightness, nil
	default:
		return "", fmt.Errorf("invalid axis %q", value)
	}
}

// UnmarshalText accepts axis names in any case and rejects unknown ones.
func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Axis) Valid() bool {
	switch a {
	case AxisHue, AxisSaturation, AxisBrightness:
		return true
	}

	return false
}

// Others returns the two channels that are not a, keeping hue, saturation,
// brightness order.
func (a Axis) Others() (Axis, Axis) {
	switch a {
	case AxisSaturation:
		return AxisHue, AxisBrightness
	case AxisBrightness:
		return AxisHue, AxisSaturation
	default:
		return AxisSaturation, AxisBrightness
	}
}

// Color is a hue, saturation, brightness triple with every channel in [0,1].
type Color struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	B float64 `json:"b"`
}

func (c Color) Channel(axis Axis) float64 {
	switch axis {
	case AxisSaturation:
		return c.S
	case AxisBrightness:
		return c.B
	default:
		return c.H
	}
}

func (c *Color) SetChannel(axis Axis, value float64) {
	switch axis {
	case AxisSaturation:
		c.S = value
	case AxisBrightness:
		c.B = value
	default:
		c.H = value
	}
}

// RGB converts with the standard HSB transform. Hue wraps, so 1.0 is red
// just like 0.0.
func (c Color) RGB() (uint8, uint8, uint8) {
	return c.colorful().RGB255()
}

func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) colorful() colorful.Color {
	hue := c.H - math.Floor(c.H)
	return colorful.Hsv(hue*360, clampUnit(c.S), clampUnit(c.B)).Clamped()
}

func clampUnit(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}

	return value
}
