package main

import (
	"path/filepath"
	"reflect"
	"testing"

	"swatch/internal/decorator"
	"swatch/internal/hsb"
)

func TestPresetServiceExportImportKeepsOrderAndConfig(t *testing.T) {
	t.Parallel()

	scales := decorator.NewService(nil)
	presets := NewPresetService(scales, t.TempDir())

	if _, err := scales.Ensure("habitat", "habitat", []string{"forest", "lake", "desert"}); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if _, err := scales.SetPrimaryAxis("habitat", string(hsb.AxisBrightness)); err != nil {
		t.Fatalf("set primary axis: %v", err)
	}
	if _, err := scales.Reorder("habitat", 2, 0); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	path, err := presets.Export("habitat", "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(path) != "habitat.toml" {
		t.Fatalf("unexpected preset path %s", path)
	}

	names, err := presets.ListPresets()
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"habitat.toml"}) {
		t.Fatalf("unexpected presets %v", names)
	}

	if _, err := scales.Ensure("copy", "habitat", []string{"lake", "forest", "desert", "reef"}); err != nil {
		t.Fatalf("ensure copy: %v", err)
	}

	state, err := presets.Import("copy", "habitat")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !reflect.DeepEqual(state.Values, []string{"desert", "forest", "lake", "reef"}) {
		t.Fatalf("unexpected imported order %v", state.Values)
	}
	if state.Config.PrimaryAxis != hsb.AxisBrightness {
		t.Fatalf("expected brightness primary axis, got %s", state.Config.PrimaryAxis)
	}
}
