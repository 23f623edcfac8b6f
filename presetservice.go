package main

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"swatch/internal/decorator"
	"swatch/internal/preset"
)

const defaultPresetExtension = ".toml"

type PresetService struct {
	scales    *decorator.Service
	presetDir string
}

func NewPresetService(scales *decorator.Service, presetDir string) *PresetService {
	return &PresetService{scales: scales, presetDir: strings.TrimSpace(presetDir)}
}

// ListPresets returns the preset file names stored in the preset directory.
func (s *PresetService) ListPresets() ([]string, error) {
	entries, err := os.ReadDir(s.presetDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := preset.FormatFromPath(entry.Name()); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)

	return names, nil
}

// Export writes the colour scale at key as a preset and returns the path
// written.
func (s *PresetService) Export(key string, name string) (string, error) {
	state, err := s.scales.Get(key)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(name) == "" {
		name = state.Key
	}
	path := s.resolvePath(name)

	err = preset.SaveFile(path, preset.Preset{
		Name:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Attribute: state.Attribute,
		Config:    state.Config,
		Values:    state.Values,
	})
	if err != nil {
		return "", err
	}

	return path, nil
}

// Import applies a preset to the colour scale at key. Values known to the
// scale take the preset's order; the scale's value set itself never changes
// unless the scale is created by the import.
func (s *PresetService) Import(key string, name string) (decorator.State, error) {
	loaded, err := preset.LoadFile(s.resolvePath(name))
	if err != nil {
		return decorator.State{}, err
	}

	state, err := s.scales.Ensure(key, loaded.Attribute, loaded.Values)
	if err != nil {
		return decorator.State{}, err
	}

	return s.scales.Commit(state.Key, loaded.Config, preset.ApplyOrder(state.Values, loaded.Values))
}

func (s *PresetService) resolvePath(name string) string {
	name = strings.TrimSpace(name)
	if filepath.Ext(name) == "" {
		name += defaultPresetExtension
	}
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(s.presetDir, filepath.Base(name))
}
