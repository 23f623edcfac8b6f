package main

import (
	"errors"
	"reflect"
	"testing"

	"swatch/internal/decorator"
	"swatch/internal/dialog"
	"swatch/internal/hsb"
	"swatch/internal/scale"
)

func TestDialogServiceStaleConfirmKeepsDraft(t *testing.T) {
	t.Parallel()

	scales := decorator.NewService(nil)
	service := NewDialogService(dialog.NewManager(), scales)

	if _, err := scales.Ensure("host", "host", []string{"human", "bat", "pig"}); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	opened, err := service.Open("host")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	config := scale.DefaultConfig()
	config.SetPrimaryAxis(hsb.AxisSaturation)
	config.SetSecondaryCount(3)
	edited, err := service.SetConfig(opened.ID, config)
	if err != nil {
		t.Fatalf("set config: %v", err)
	}
	if edited.Config.PrimaryAxis != hsb.AxisSaturation || edited.Config.SecondaryCount != 3 {
		t.Fatalf("unexpected draft config %+v", edited.Config)
	}

	if _, err := scales.MergeValues("host", []string{"human", "bat", "pig", "cow"}); err != nil {
		t.Fatalf("merge values: %v", err)
	}

	if _, err := service.Confirm(opened.ID); !errors.Is(err, decorator.ErrStaleDraft) {
		t.Fatalf("expected stale draft error, got %v", err)
	}

	kept, err := service.Get(opened.ID)
	if err != nil {
		t.Fatalf("expected dialog to stay open: %v", err)
	}
	if kept.Config.PrimaryAxis != hsb.AxisSaturation {
		t.Fatalf("expected draft edits to survive, got %+v", kept.Config)
	}

	live, err := scales.Get("host")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if live.Config.PrimaryAxis != hsb.AxisHue {
		t.Fatalf("expected live scale untouched, got %+v", live.Config)
	}

	if err := service.Cancel(opened.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	reopened, err := service.Open("host")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	state, err := service.Confirm(reopened.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !reflect.DeepEqual(state.Values, []string{"human", "bat", "pig", "cow"}) {
		t.Fatalf("unexpected committed values %v", state.Values)
	}
}
