package main

import (
	"swatch/internal/decorator"
	"swatch/internal/dialog"
	"swatch/internal/scale"
)

type DialogService struct {
	dialogs *dialog.Manager
	scales  *decorator.Service
}

type DropResult struct {
	State dialog.State `json:"state"`
	Moved bool         `json:"moved"`
}

func NewDialogService(dialogs *dialog.Manager, scales *decorator.Service) *DialogService {
	return &DialogService{dialogs: dialogs, scales: scales}
}

func (s *DialogService) Open(key string) (dialog.State, error) {
	state, err := s.scales.Get(key)
	if err != nil {
		return dialog.State{}, err
	}

	return s.dialogs.Open(state.Key, state.Config, state.Values)
}

func (s *DialogService) Get(id string) (dialog.State, error) {
	return s.dialogs.Get(id)
}

func (s *DialogService) SetPrimaryAxis(id string, axis string) (dialog.State, error) {
	return s.dialogs.SetPrimaryAxis(id, axis)
}

func (s *DialogService) SetSecondaryCount(id string, count int) (dialog.State, error) {
	return s.dialogs.SetSecondaryCount(id, count)
}

func (s *DialogService) SetSlider(id string, axis string, lower int, upper int) (dialog.State, error) {
	return s.dialogs.SetSlider(id, axis, lower, upper)
}

func (s *DialogService) SetConfig(id string, config scale.Config) (dialog.State, error) {
	return s.dialogs.SetConfig(id, config)
}

func (s *DialogService) Select(id string, row int) (dialog.State, error) {
	return s.dialogs.Select(id, row)
}

func (s *DialogService) Drop(id string, fromIndex int, toIndex int) (DropResult, error) {
	state, moved, err := s.dialogs.Drop(id, fromIndex, toIndex)
	if err != nil {
		return DropResult{}, err
	}

	return DropResult{State: state, Moved: moved}, nil
}

// Confirm applies the draft to the live scale. The dialog stays open when
// the scale rejects it.
func (s *DialogService) Confirm(id string) (decorator.State, error) {
	var committed decorator.State
	_, err := s.dialogs.Confirm(id, func(draft dialog.Draft) error {
		state, err := s.scales.Commit(draft.Key, draft.Config, draft.Values)
		if err != nil {
			return err
		}
		committed = state
		return nil
	})
	if err != nil {
		return decorator.State{}, err
	}

	return committed, nil
}

func (s *DialogService) Cancel(id string) error {
	return s.dialogs.Cancel(id)
}
