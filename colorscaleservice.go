package main

import (
	"errors"

	"swatch/internal/annotations"
	"swatch/internal/decorator"
	"swatch/internal/dialog"
	"swatch/internal/scale"
)

type ColorScaleService struct {
	scales  *decorator.Service
	dialogs *dialog.Manager
	sources *annotations.Registry
}

func NewColorScaleService(
	scales *decorator.Service,
	dialogs *dialog.Manager,
	sources *annotations.Registry,
) *ColorScaleService {
	return &ColorScaleService{scales: scales, dialogs: dialogs, sources: sources}
}

func (s *ColorScaleService) List() []decorator.State {
	return s.scales.List()
}

func (s *ColorScaleService) Get(key string) (decorator.State, error) {
	return s.scales.Get(key)
}

func (s *ColorScaleService) Ensure(key string, attribute string, values []string) (decorator.State, error) {
	return s.scales.Ensure(key, attribute, values)
}

func (s *ColorScaleService) GetOrderedValues(key string) ([]string, error) {
	return s.scales.OrderedValues(key)
}

func (s *ColorScaleService) GetColorFor(key string, value string) (scale.Swatch, error) {
	return s.scales.ColorFor(key, value)
}

func (s *ColorScaleService) GetConfiguration(key string) (scale.Config, error) {
	return s.scales.Configuration(key)
}

func (s *ColorScaleService) ApplyConfiguration(key string, config scale.Config) (decorator.State, error) {
	return s.scales.ApplyConfiguration(key, config)
}

func (s *ColorScaleService) SetPrimaryAxis(key string, axis string) (decorator.State, error) {
	return s.scales.SetPrimaryAxis(key, axis)
}

func (s *ColorScaleService) SetValues(key string, values []string) (decorator.State, error) {
	return s.scales.SetValues(key, values)
}

func (s *ColorScaleService) Reorder(key string, fromIndex int, toIndex int) (decorator.State, error) {
	return s.scales.Reorder(key, fromIndex, toIndex)
}

// Delete removes the scale together with any open dialogs and its
// annotation source.
func (s *ColorScaleService) Delete(key string) error {
	if err := s.scales.Delete(key); err != nil {
		return err
	}

	s.dialogs.CancelKey(key)
	if err := s.sources.Detach(key); err != nil && !errors.Is(err, annotations.ErrSourceNotFound) {
		return err
	}

	return nil
}
