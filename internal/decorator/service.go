package decorator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"swatch/internal/hsb"
	"swatch/internal/logging"
	"swatch/internal/scale"
)

const (
	EventStateChanged = "colorscale:state"
	EventDeleted      = "colorscale:deleted"
)

var ErrStaleDraft = errors.New("draft values no longer match the colour scale")

type Emitter func(eventName string, payload any)

type ChangeListener func(state State)

type State struct {
	Key       string         `json:"key"`
	Attribute string         `json:"attribute"`
	Config    scale.Config   `json:"config"`
	Values    []string       `json:"values"`
	Swatches  []scale.Swatch `json:"swatches"`
	Total     int            `json:"total"`
	UpdatedAt string         `json:"updatedAt"`
}

type entry struct {
	attribute string
	decorator *scale.Decorator
	updatedAt time.Time
}

// Service owns the live decorators. Every mutation is persisted and then
// announced exactly once through the emitter and the change listener.
type Service struct {
	mu       sync.Mutex
	repo     *Repository
	scales   map[string]*entry
	emit     Emitter
	onChange ChangeListener
	logger   zerolog.Logger
}

func NewService(database *sql.DB) *Service {
	service := &Service{
		scales: make(map[string]*entry),
		logger: logging.For("decorator"),
	}
	if database != nil {
		service.repo = NewRepository(database)
	}

	service.loadSnapshot()
	return service
}

func (s *Service) SetEmitter(emitter Emitter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emit = emitter
}

func (s *Service) SetOnChange(listener ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = listener
}

func (s *Service) List() []State {
	s.mu.Lock()
	defer s.mu.Unlock()

	states := make([]State, 0, len(s.scales))
	for _, key := range slices.Sorted(maps.Keys(s.scales)) {
		states = append(states, s.snapshotLocked(key, s.scales[key]))
	}

	return states
}

func (s *Service) Get(key string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.scales[key]
	if !ok {
		return State{}, notFound(key)
	}

	return s.snapshotLocked(key, current), nil
}

// Ensure returns the decorator for key, creating it with the default
// configuration and the given values when it does not exist yet.
func (s *Service) Ensure(key string, attribute string, values []string) (State, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return State{}, errors.New("colour scale key is required")
	}

	s.mu.Lock()
	if current, ok := s.scales[key]; ok {
		state := s.snapshotLocked(key, current)
		s.mu.Unlock()
		return state, nil
	}

	created := &entry{
		attribute: strings.TrimSpace(attribute),
		decorator: scale.NewDecorator(scale.DefaultConfig(), values),
	}
	created.updatedAt = time.Now().UTC()
	s.scales[key] = created
	state := s.snapshotLocked(key, created)
	s.mu.Unlock()

	s.afterMutation(state)
	return state, nil
}

func (s *Service) OrderedValues(key string) ([]string, error) {
	state, err := s.Get(key)
	if err != nil {
		return nil, err
	}

	return state.Values, nil
}

func (s *Service) ColorFor(key string, value string) (scale.Swatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.scales[key]
	if !ok {
		return scale.Swatch{}, notFound(key)
	}

	color, err := current.decorator.ColorFor(value)
	if err != nil {
		return scale.Swatch{}, err
	}

	return scale.NewSwatch(value, color), nil
}

func (s *Service) Configuration(key string) (scale.Config, error) {
	state, err := s.Get(key)
	if err != nil {
		return scale.Config{}, err
	}

	return state.Config, nil
}

func (s *Service) ApplyConfiguration(key string, config scale.Config) (State, error) {
	return s.mutate(key, func(current *entry) error {
		current.decorator.Config = config.Normalized()
		return nil
	})
}

func (s *Service) SetPrimaryAxis(key string, axis string) (State, error) {
	parsed, err := hsb.ParseAxis(axis)
	if err != nil {
		return State{}, err
	}

	return s.mutate(key, func(current *entry) error {
		current.decorator.Config.SetPrimaryAxis(parsed)
		return nil
	})
}

func (s *Service) SetValues(key string, values []string) (State, error) {
	return s.mutate(key, func(current *entry) error {
		current.decorator.Values = slices.Clone(values)
		return nil
	})
}

func (s *Service) Reorder(key string, fromIndex int, toIndex int) (State, error) {
	return s.mutate(key, func(current *entry) error {
		return current.decorator.Reorder(fromIndex, toIndex)
	})
}

// Commit applies a dialog draft in one step. The draft values must be a
// reordering of the live values.
func (s *Service) Commit(key string, config scale.Config, values []string) (State, error) {
	return s.mutate(key, func(current *entry) error {
		if !scale.IsPermutation(current.decorator.Values, values) {
			return ErrStaleDraft
		}

		current.decorator.Config = config.Normalized()
		current.decorator.Values = slices.Clone(values)
		return nil
	})
}

// MergeValues keeps the values that are still present in their current
// order, drops the ones that vanished and appends new ones as they appear in
// values.
func (s *Service) MergeValues(key string, values []string) (State, error) {
	s.mu.Lock()
	current, ok := s.scales[key]
	if !ok {
		s.mu.Unlock()
		return State{}, notFound(key)
	}

	merged := mergeValues(current.decorator.Values, values)
	if slices.Equal(merged, current.decorator.Values) {
		state := s.snapshotLocked(key, current)
		s.mu.Unlock()
		return state, nil
	}

	current.decorator.Values = merged
	current.updatedAt = time.Now().UTC()
	state := s.snapshotLocked(key, current)
	s.mu.Unlock()

	s.afterMutation(state)
	return state, nil
}

func (s *Service) Delete(key string) error {
	s.mu.Lock()
	if _, ok := s.scales[key]; !ok {
		s.mu.Unlock()
		return notFound(key)
	}
	delete(s.scales, key)
	emitter := s.emit
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Delete(context.Background(), key); err != nil && !errors.Is(err, ErrDecoratorNotFound) {
			return err
		}
	}

	if emitter != nil {
		emitter(EventDeleted, key)
	}
	return nil
}

func (s *Service) mutate(key string, apply func(current *entry) error) (State, error) {
	s.mu.Lock()
	current, ok := s.scales[key]
	if !ok {
		s.mu.Unlock()
		return State{}, notFound(key)
	}

	if err := apply(current); err != nil {
		state := s.snapshotLocked(key, current)
		s.mu.Unlock()
		return state, err
	}

	current.updatedAt = time.Now().UTC()
	state := s.snapshotLocked(key, current)
	s.mu.Unlock()

	s.afterMutation(state)
	return state, nil
}

func (s *Service) afterMutation(state State) {
	s.persist(state)
	s.emitState(state)
	s.notifyChange(state)
}

func (s *Service) emitState(state State) {
	s.mu.Lock()
	emitter := s.emit
	s.mu.Unlock()

	if emitter != nil {
		emitter(EventStateChanged, state)
	}
}

func (s *Service) notifyChange(state State) {
	s.mu.Lock()
	listener := s.onChange
	s.mu.Unlock()

	if listener != nil {
		listener(state)
	}
}

func (s *Service) snapshotLocked(key string, current *entry) State {
	state := State{
		Key:       key,
		Attribute: current.attribute,
		Config:    current.decorator.Config,
		Values:    slices.Clone(current.decorator.Values),
		Swatches:  current.decorator.Swatches(),
		Total:     len(current.decorator.Values),
	}
	if state.Values == nil {
		state.Values = []string{}
	}

	if !current.updatedAt.IsZero() {
		state.UpdatedAt = current.updatedAt.UTC().Format(time.RFC3339)
	}

	return state
}

func (s *Service) loadSnapshot() {
	if s.repo == nil {
		return
	}

	records, err := s.repo.List(context.Background())
	if err != nil {
		s.logger.Error().Err(err).Msg("load colour scales")
		return
	}

	s.mu.Lock()
	for _, record := range records {
		s.scales[record.Key] = &entry{
			attribute: record.Attribute,
			decorator: scale.NewDecorator(record.Config, record.Values),
			updatedAt: record.UpdatedAt,
		}
	}
	s.mu.Unlock()

	s.logger.Debug().Int("count", len(records)).Msg("colour scales loaded")
}

func (s *Service) persist(state State) {
	if s.repo == nil {
		return
	}

	s.mu.Lock()
	current, ok := s.scales[state.Key]
	var updatedAt time.Time
	if ok {
		updatedAt = current.updatedAt
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	err := s.repo.Save(context.Background(), Record{
		Key:       state.Key,
		Attribute: state.Attribute,
		Config:    state.Config,
		Values:    state.Values,
		UpdatedAt: updatedAt,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("key", state.Key).Msg("persist colour scale")
	}
}

func mergeValues(current []string, incoming []string) []string {
	incoming = lo.Uniq(incoming)
	kept := lo.Filter(current, func(value string, _ int) bool {
		return lo.Contains(incoming, value)
	})
	added := lo.Filter(incoming, func(value string, _ int) bool {
		return !lo.Contains(current, value)
	})

	return append(kept, added...)
}

func notFound(key string) error {
	return fmt.Errorf("%w: %s", ErrDecoratorNotFound, key)
}
