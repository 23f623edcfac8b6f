package main

import (
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"swatch/internal/annotations"
	"swatch/internal/decorator"
	"swatch/internal/logging"
)

type AttachResult struct {
	Source annotations.Source `json:"source"`
	Scale  decorator.State    `json:"scale"`
}

type AnnotationService struct {
	mu       sync.Mutex
	registry *annotations.Registry
	scales   *decorator.Service
	emit     decorator.Emitter
	logger   zerolog.Logger
}

func NewAnnotationService(registry *annotations.Registry, scales *decorator.Service) *AnnotationService {
	service := &AnnotationService{
		registry: registry,
		scales:   scales,
		logger:   logging.For("annotations"),
	}
	registry.SetOnReload(service.handleReload)

	return service
}

func (s *AnnotationService) SetEmitter(emitter decorator.Emitter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emit = emitter
}

// Attributes lists the columns of an annotation file, the taxon name
// column excluded.
func (s *AnnotationService) Attributes(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return annotations.Attributes(file)
}

// Attach feeds the colour scale at key from a column of an annotation file.
// A missing scale is created; an existing one keeps its order for the values
// that survive.
func (s *AnnotationService) Attach(key string, path string, attribute string) (AttachResult, error) {
	source, values, err := s.registry.Attach(key, path, attribute)
	if err != nil {
		return AttachResult{}, err
	}

	state, err := s.scales.Ensure(source.Key, source.Attribute, values)
	if err != nil {
		return AttachResult{}, err
	}

	state, err = s.scales.MergeValues(source.Key, values)
	if err != nil {
		return AttachResult{}, err
	}

	return AttachResult{Source: source, Scale: state}, nil
}

func (s *AnnotationService) Detach(key string) error {
	return s.registry.Detach(key)
}

func (s *AnnotationService) Sources() []annotations.Source {
	return s.registry.Sources()
}

func (s *AnnotationService) handleReload(reload annotations.Reload) {
	if reload.Error == "" {
		if _, err := s.scales.MergeValues(reload.Key, reload.Values); err != nil {
			if !errors.Is(err, decorator.ErrDecoratorNotFound) {
				s.logger.Error().Err(err).Str("key", reload.Key).Msg("merge reloaded values")
			}
			reload.Error = err.Error()
		}
	}

	s.mu.Lock()
	emit := s.emit
	s.mu.Unlock()

	if emit != nil {
		emit(annotations.EventReloaded, reload)
	}
}
