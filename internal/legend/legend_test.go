package legend

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"swatch/internal/scale"
)

func TestRenderFillsSwatchBoxes(t *testing.T) {
	t.Parallel()

	config := scale.DefaultConfig()
	swatches := scale.NewDecorator(config, []string{"human", "bat", "pig"}).Swatches()

	options := DefaultOptions()
	img := Render(swatches, options)

	for index, swatch := range swatches {
		x := options.Padding + options.SwatchSize/2
		y := options.Padding + index*(options.SwatchSize+options.Gap) + options.SwatchSize/2
		got := img.NRGBAAt(x, y)
		want := color.NRGBA{R: swatch.R, G: swatch.G, B: swatch.B, A: 0xff}
		if got != want {
			t.Fatalf("row %d: expected %v at (%d,%d), got %v", index, want, x, y, got)
		}
	}

	if img.Bounds().Dx() <= options.Padding*2+options.SwatchSize {
		t.Fatalf("expected room for labels, got width %d", img.Bounds().Dx())
	}
}

func TestRenderEmptyLegend(t *testing.T) {
	t.Parallel()

	img := Render(nil, Options{Padding: 4})
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("expected padding-only image, got %v", img.Bounds())
	}
}

func TestWritePNG(t *testing.T) {
	t.Parallel()

	swatches := scale.NewDecorator(scale.DefaultConfig(), []string{"a"}).Swatches()
	img := Render(swatches, Options{Title: "host"})

	var buffer bytes.Buffer
	if err := WritePNG(&buffer, img); err != nil {
		t.Fatalf("write png: %v", err)
	}

	decoded, err := png.Decode(&buffer)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}
