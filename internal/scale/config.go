package scale

import (
	"math"

	"swatch/internal/hsb"
)

const (
	MinSecondaryCount     = 1
	MaxSecondaryCount     = 100
	DefaultSecondaryCount = 2
)

// Range is a (lower, upper) bound pair on one HSB channel.
type Range struct {
	Lower float64 `json:"lower" toml:"lower" yaml:"lower"`
	Upper float64 `json:"upper" toml:"upper" yaml:"upper"`
}

func NewRange(lower float64, upper float64) Range {
	return Range{Lower: lower, Upper: upper}.Normalized()
}

// Normalized clamps both bounds to [0,1] and orders them.
func (r Range) Normalized() Range {
	lower := clampUnit(r.Lower)
	upper := clampUnit(r.Upper)
	if lower > upper {
		lower, upper = upper, lower
	}

	return Range{Lower: lower, Upper: upper}
}

// At interpolates t in [0,1] across the range.
func (r Range) At(t float64) float64 {
	n := r.Normalized()
	return n.Lower + (n.Upper-n.Lower)*t
}

// Config is the axis configuration of a discrete HSB decorator.
type Config struct {
	PrimaryAxis    hsb.Axis `json:"primaryAxis" toml:"primary_axis" yaml:"primary_axis"`
	SecondaryCount int      `json:"secondaryCount" toml:"secondary_count" yaml:"secondary_count"`
	Hue            Range    `json:"hue" toml:"hue" yaml:"hue"`
	Saturation     Range    `json:"saturation" toml:"saturation" yaml:"saturation"`
	Brightness     Range    `json:"brightness" toml:"brightness" yaml:"brightness"`
}

func DefaultConfig() Config {
	return Config{
		PrimaryAxis:    hsb.AxisHue,
		SecondaryCount: DefaultSecondaryCount,
		Hue:            Range{Lower: 0, Upper: 0.8},
		Saturation:     Range{Lower: 0.5, Upper: 0.9},
		Brightness:     Range{Lower: 0.6, Upper: 0.95},
	}
}

// Normalized returns a copy that satisfies every invariant: a known primary
// axis, a secondary count in [1,100] and sorted bounds in [0,1].
func (c Config) Normalized() Config {
	if !c.PrimaryAxis.Valid() {
		c.PrimaryAxis = hsb.AxisHue
	}
	c.SecondaryCount = clampSecondaryCount(c.SecondaryCount)
	c.Hue = c.Hue.Normalized()
	c.Saturation = c.Saturation.Normalized()
	c.Brightness = c.Brightness.Normalized()

	return c
}

func (c *Config) SetPrimaryAxis(axis hsb.Axis) {
	if !axis.Valid() {
		axis = hsb.AxisHue
	}
	c.PrimaryAxis = axis
}

func (c *Config) SetSecondaryCount(count int) {
	c.SecondaryCount = clampSecondaryCount(count)
}

func (c Config) Range(axis hsb.Axis) Range {
	switch axis {
	case hsb.AxisSaturation:
		return c.Saturation
	case hsb.AxisBrightness:
		return c.Brightness
	default:
		return c.Hue
	}
}

// SetRange stores the pair for axis in sorted, clamped form.
func (c *Config) SetRange(axis hsb.Axis, lower float64, upper float64) {
	r := NewRange(lower, upper)
	switch axis {
	case hsb.AxisSaturation:
		c.Saturation = r
	case hsb.AxisBrightness:
		c.Brightness = r
	default:
		c.Hue = r
	}
}

// SetLower moves the lower bound of axis. An upper bound below the new
// lower bound is dragged up with it.
func (c *Config) SetLower(axis hsb.Axis, value float64) {
	r := c.Range(axis)
	r.Lower = clampUnit(value)
	if r.Upper < r.Lower {
		r.Upper = r.Lower
	}
	c.SetRange(axis, r.Lower, r.Upper)
}

// SetUpper moves the upper bound of axis, dragging the lower bound down
// when needed.
func (c *Config) SetUpper(axis hsb.Axis, value float64) {
	r := c.Range(axis)
	r.Upper = clampUnit(value)
	if r.Lower > r.Upper {
		r.Lower = r.Upper
	}
	c.SetRange(axis, r.Lower, r.Upper)
}

func (c *Config) SetHueLower(value float64)        { c.SetLower(hsb.AxisHue, value) }
func (c *Config) SetHueUpper(value float64)        { c.SetUpper(hsb.AxisHue, value) }
func (c *Config) SetSaturationLower(value float64) { c.SetLower(hsb.AxisSaturation, value) }
func (c *Config) SetSaturationUpper(value float64) { c.SetUpper(hsb.AxisSaturation, value) }
func (c *Config) SetBrightnessLower(value float64) { c.SetLower(hsb.AxisBrightness, value) }
func (c *Config) SetBrightnessUpper(value float64) { c.SetUpper(hsb.AxisBrightness, value) }

func clampSecondaryCount(count int) int {
	if count < MinSecondaryCount {
		return MinSecondaryCount
	}
	if count > MaxSecondaryCount {
		return MaxSecondaryCount
	}

	return count
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
