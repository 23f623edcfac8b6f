package dialog

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog"

	"swatch/internal/hsb"
	"swatch/internal/logging"
	"swatch/internal/scale"
)

const EventStateChanged = "dialog:state"

var ErrSessionNotFound = errors.New("dialog session not found")

type Emitter func(eventName string, payload any)

// Draft is the private copy a dialog edits. The live decorator only sees it
// on confirm.
type Draft struct {
	Key    string       `json:"key"`
	Config scale.Config `json:"config"`
	Values []string     `json:"values"`
}

type State struct {
	ID       string         `json:"id"`
	Key      string         `json:"key"`
	Config   scale.Config   `json:"config"`
	Sliders  Sliders        `json:"sliders"`
	Rows     []scale.Swatch `json:"rows"`
	Selected int            `json:"selected"`
}

type session struct {
	id       string
	draft    Draft
	selected int
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	emit     Emitter
	logger   zerolog.Logger
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		logger:   logging.For("dialog"),
	}
}

func (m *Manager) SetEmitter(emitter Emitter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit = emitter
}

// Open starts a session on a deep copy of the given configuration and values.
func (m *Manager) Open(key string, config scale.Config, values []string) (State, error) {
	source := Draft{Key: key, Config: config.Normalized(), Values: values}

	var draft Draft
	if err := copier.CopyWithOption(&draft, &source, copier.Option{DeepCopy: true}); err != nil {
		return State{}, fmt.Errorf("copy dialog draft: %w", err)
	}
	if draft.Values == nil {
		draft.Values = []string{}
	}

	opened := &session{id: uuid.NewString(), draft: draft, selected: -1}

	m.mu.Lock()
	m.sessions[opened.id] = opened
	state := snapshotLocked(opened)
	m.mu.Unlock()

	m.logger.Debug().Str("session", opened.id).Str("key", key).Msg("dialog opened")
	return state, nil
}

func (m *Manager) Get(id string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.sessions[id]
	if !ok {
		return State{}, notFound(id)
	}

	return snapshotLocked(current), nil
}

func (m *Manager) SetPrimaryAxis(id string, axis string) (State, error) {
	parsed, err := hsb.ParseAxis(axis)
	if err != nil {
		return State{}, err
	}

	return m.mutate(id, func(current *session) error {
		current.draft.Config.SetPrimaryAxis(parsed)
		return nil
	})
}

func (m *Manager) SetSecondaryCount(id string, count int) (State, error) {
	return m.mutate(id, func(current *session) error {
		current.draft.Config.SetSecondaryCount(count)
		return nil
	})
}

// SetSlider moves both handles of the slider for axis.
func (m *Manager) SetSlider(id string, axis string, lower int, upper int) (State, error) {
	parsed, err := hsb.ParseAxis(axis)
	if err != nil {
		return State{}, err
	}

	return m.mutate(id, func(current *session) error {
		applySlider(&current.draft.Config, parsed, lower, upper)
		return nil
	})
}

func (m *Manager) SetConfig(id string, config scale.Config) (State, error) {
	return m.mutate(id, func(current *session) error {
		current.draft.Config = config.Normalized()
		return nil
	})
}

func (m *Manager) Select(id string, row int) (State, error) {
	return m.mutate(id, func(current *session) error {
		if row < -1 || row >= len(current.draft.Values) {
			return fmt.Errorf("select row %d: %w", row, scale.ErrIndexOutOfRange)
		}
		current.selected = row
		return nil
	})
}

// Drop handles a row dragged from from and released at to. A drop target
// outside the table lands at the end. Dropping a row onto itself, or a drag
// without a source row (-1), changes nothing and reports moved == false.
func (m *Manager) Drop(id string, from int, to int) (State, bool, error) {
	m.mu.Lock()
	current, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return State{}, false, notFound(id)
	}

	count := len(current.draft.Values)
	if to < 0 || to > count {
		to = count
	}
	if from == -1 || from == to {
		state := snapshotLocked(current)
		m.mu.Unlock()
		return state, false, nil
	}

	if err := scale.Reorder(current.draft.Values, from, to); err != nil {
		state := snapshotLocked(current)
		m.mu.Unlock()
		return state, false, err
	}
	current.selected = scale.InsertionIndex(from, to)
	state := snapshotLocked(current)
	m.mu.Unlock()

	m.emitState(state)
	return state, true, nil
}

// Confirm hands a copy of the draft to commit and closes the session once
// commit succeeds. A failed commit leaves the session open with its edits.
func (m *Manager) Confirm(id string, commit func(draft Draft) error) (Draft, error) {
	m.mu.Lock()
	current, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return Draft{}, notFound(id)
	}
	draft := Draft{
		Key:    current.draft.Key,
		Config: current.draft.Config,
		Values: slices.Clone(current.draft.Values),
	}
	m.mu.Unlock()

	if commit != nil {
		if err := commit(draft); err != nil {
			return draft, err
		}
	}

	m.mu.Lock()
	if m.sessions[id] == current {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	m.logger.Debug().Str("session", id).Str("key", draft.Key).Msg("dialog confirmed")
	return draft, nil
}

func (m *Manager) Cancel(id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return notFound(id)
	}

	m.logger.Debug().Str("session", id).Msg("dialog cancelled")
	return nil
}

func (m *Manager) CancelKey(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	closed := 0
	for id, current := range m.sessions {
		if current.draft.Key == key {
			delete(m.sessions, id)
			closed++
		}
	}

	return closed
}

func (m *Manager) mutate(id string, apply func(current *session) error) (State, error) {
	m.mu.Lock()
	current, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return State{}, notFound(id)
	}

	if err := apply(current); err != nil {
		state := snapshotLocked(current)
		m.mu.Unlock()
		return state, err
	}

	state := snapshotLocked(current)
	m.mu.Unlock()

	m.emitState(state)
	return state, nil
}

func (m *Manager) emitState(state State) {
	m.mu.Lock()
	emitter := m.emit
	m.mu.Unlock()

	if emitter != nil {
		emitter(EventStateChanged, state)
	}
}

func snapshotLocked(current *session) State {
	decorator := scale.Decorator{Config: current.draft.Config, Values: current.draft.Values}

	return State{
		ID:       current.id,
		Key:      current.draft.Key,
		Config:   current.draft.Config,
		Sliders:  SlidersFor(current.draft.Config),
		Rows:     decorator.Swatches(),
		Selected: current.selected,
	}
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
}
