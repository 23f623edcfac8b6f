package preset

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"swatch/internal/hsb"
	"swatch/internal/scale"
)

func TestSaveAndLoadFileKeepsConfigAndOrder(t *testing.T) {
	t.Parallel()

	config := scale.DefaultConfig()
	config.SetPrimaryAxis(hsb.AxisSaturation)
	config.SetSecondaryCount(4)
	config.SetRange(hsb.AxisHue, 0.125, 0.625)

	original := Preset{
		Name:      "hosts",
		Attribute: "host",
		Config:    config,
		Values:    []string{"human", "bat", "pig"},
	}

	for _, name := range []string{"hosts.toml", "hosts.yaml", "hosts.yml"} {
		path := filepath.Join(t.TempDir(), name)
		if err := SaveFile(path, original); err != nil {
			t.Fatalf("%s: save: %v", name, err)
		}

		loaded, err := LoadFile(path)
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		if !reflect.DeepEqual(loaded, original) {
			t.Fatalf("%s: got %+v, want %+v", name, loaded, original)
		}
	}
}

func TestDecodeNormalizesConfig(t *testing.T) {
	t.Parallel()

	body := `
name = "broken"
values = ["a"]

[config]
primary_axis = "brightness"
secondary_count = 0

[config.hue]
lower = 0.9
upper = 0.1
`

	preset, err := Decode(strings.NewReader(body), FormatTOML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if preset.Config.SecondaryCount != scale.MinSecondaryCount {
		t.Fatalf("expected clamped secondary count, got %d", preset.Config.SecondaryCount)
	}
	if preset.Config.Hue != (scale.Range{Lower: 0.1, Upper: 0.9}) {
		t.Fatalf("expected sorted hue range, got %+v", preset.Config.Hue)
	}
	if preset.Config.PrimaryAxis != hsb.AxisBrightness {
		t.Fatalf("expected brightness primary, got %q", preset.Config.PrimaryAxis)
	}
}

func TestDecodeAcceptsAxisInAnyCase(t *testing.T) {
	t.Parallel()

	body := "[config]\nprimary_axis = \"Saturation\"\n"
	preset, err := Decode(strings.NewReader(body), FormatTOML)
	if err != nil {
		t.Fatalf("decode toml: %v", err)
	}
	if preset.Config.PrimaryAxis != hsb.AxisSaturation {
		t.Fatalf("expected saturation primary, got %q", preset.Config.PrimaryAxis)
	}

	preset, err = Decode(strings.NewReader("config:\n  primary_axis: BRIGHTNESS\n"), FormatYAML)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if preset.Config.PrimaryAxis != hsb.AxisBrightness {
		t.Fatalf("expected brightness primary, got %q", preset.Config.PrimaryAxis)
	}

	if _, err := Decode(strings.NewReader("[config]\nprimary_axis = \"alpha\"\n"), FormatTOML); err == nil {
		t.Fatal("expected error for unknown axis")
	}
}

func TestUnsupportedExtension(t *testing.T) {
	t.Parallel()

	err := SaveFile(filepath.Join(t.TempDir(), "hosts.json"), Preset{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format, got %v", err)
	}
}
