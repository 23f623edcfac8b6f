package main

import (
	"swatch/internal/annotations"
	"swatch/internal/decorator"
	"swatch/internal/dialog"
	"swatch/internal/hsb"
	"swatch/internal/scale"
)

type StartupSnapshot struct {
	Scales            []decorator.State    `json:"scales"`
	Sources           []annotations.Source `json:"sources"`
	Presets           []string             `json:"presets"`
	Axes              []hsb.Axis           `json:"axes"`
	DefaultConfig     scale.Config         `json:"defaultConfig"`
	SliderRange       int                  `json:"sliderRange"`
	MinSecondaryCount int                  `json:"minSecondaryCount"`
	MaxSecondaryCount int                  `json:"maxSecondaryCount"`
}

type BootstrapService struct {
	scales  *decorator.Service
	sources *annotations.Registry
	presets *PresetService
}

func NewBootstrapService(
	scales *decorator.Service,
	sources *annotations.Registry,
	presets *PresetService,
) *BootstrapService {
	return &BootstrapService{
		scales:  scales,
		sources: sources,
		presets: presets,
	}
}

func (s *BootstrapService) GetInitialState() (StartupSnapshot, error) {
	presets, err := s.presets.ListPresets()
	if err != nil {
		return StartupSnapshot{}, err
	}

	return StartupSnapshot{
		Scales:            s.scales.List(),
		Sources:           s.sources.Sources(),
		Presets:           presets,
		Axes:              hsb.Axes,
		DefaultConfig:     scale.DefaultConfig(),
		SliderRange:       dialog.SliderRange,
		MinSecondaryCount: scale.MinSecondaryCount,
		MaxSecondaryCount: scale.MaxSecondaryCount,
	}, nil
}
