package dialog

import (
	"swatch/internal/hsb"
	"swatch/internal/scale"
)

// SliderRange is the number of steps on each range slider.
const SliderRange = 1000

// SliderPair holds the two handle positions of a range slider.
type SliderPair struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

type Sliders struct {
	Hue        SliderPair `json:"hue"`
	Saturation SliderPair `json:"saturation"`
	Brightness SliderPair `json:"brightness"`
}

// ToSlider truncates a [0,1] bound to a handle position.
func ToSlider(value float64) int {
	return clampPosition(int(value * SliderRange))
}

func FromSlider(position int) float64 {
	return float64(clampPosition(position)) / SliderRange
}

func SlidersFor(config scale.Config) Sliders {
	pair := func(r scale.Range) SliderPair {
		return SliderPair{Lower: ToSlider(r.Lower), Upper: ToSlider(r.Upper)}
	}

	return Sliders{
		Hue:        pair(config.Hue),
		Saturation: pair(config.Saturation),
		Brightness: pair(config.Brightness),
	}
}

func applySlider(config *scale.Config, axis hsb.Axis, lower int, upper int) {
	config.SetRange(axis, FromSlider(lower), FromSlider(upper))
}

func clampPosition(position int) int {
	if position < 0 {
		return 0
	}
	if position > SliderRange {
		return SliderRange
	}

	return position
}
