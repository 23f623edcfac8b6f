package legend

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"swatch/internal/scale"
)

type Options struct {
	Title      string
	SwatchSize int
	Padding    int
	Gap        int
	Background color.Color
	Foreground color.Color
}

func DefaultOptions() Options {
	return Options{
		SwatchSize: 14,
		Padding:    8,
		Gap:        6,
		Background: color.White,
		Foreground: color.Black,
	}
}

func (o Options) normalized() Options {
	defaults := DefaultOptions()
	if o.SwatchSize <= 0 {
		o.SwatchSize = defaults.SwatchSize
	}
	if o.Padding < 0 {
		o.Padding = defaults.Padding
	}
	if o.Gap < 0 {
		o.Gap = defaults.Gap
	}
	if o.Background == nil {
		o.Background = defaults.Background
	}
	if o.Foreground == nil {
		o.Foreground = defaults.Foreground
	}

	return o
}

// Render draws one row per swatch: a filled square followed by its value.
func Render(swatches []scale.Swatch, options Options) *image.NRGBA {
	options = options.normalized()
	face := basicfont.Face7x13
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()
	rowHeight := max(options.SwatchSize, textHeight)

	labelWidth := 0
	for _, swatch := range swatches {
		labelWidth = max(labelWidth, font.MeasureString(face, swatch.Value).Ceil())
	}
	titleWidth := font.MeasureString(face, options.Title).Ceil()

	width := options.Padding*2 + max(titleWidth, options.SwatchSize+options.Gap+labelWidth)
	if len(swatches) == 0 {
		width = options.Padding*2 + titleWidth
	}
	height := options.Padding * 2
	top := options.Padding
	if options.Title != "" {
		height += textHeight + options.Gap
		top += textHeight + options.Gap
	}
	if len(swatches) > 0 {
		height += len(swatches)*rowHeight + (len(swatches)-1)*options.Gap
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(options.Background), image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: img, Src: image.NewUniform(options.Foreground), Face: face}
	if options.Title != "" {
		drawer.Dot = fixed.P(options.Padding, options.Padding+metrics.Ascent.Ceil())
		drawer.DrawString(options.Title)
	}

	for index, swatch := range swatches {
		y := top + index*(rowHeight+options.Gap)
		box := image.Rect(options.Padding, y, options.Padding+options.SwatchSize, y+options.SwatchSize)
		fill := color.NRGBA{R: swatch.R, G: swatch.G, B: swatch.B, A: 0xff}
		draw.Draw(img, box, image.NewUniform(fill), image.Point{}, draw.Src)

		baseline := y + (rowHeight-textHeight)/2 + metrics.Ascent.Ceil()
		drawer.Dot = fixed.P(options.Padding+options.SwatchSize+options.Gap, baseline)
		drawer.DrawString(swatch.Value)
	}

	return img
}

func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode legend png: %w", err)
	}

	return nil
}
