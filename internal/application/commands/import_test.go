package commands

import (
	"context"
	"errors"
	"testing"

	"keyframer/internal/application"
	"keyframer/internal/domain"
)

func TestImportCommand_Execute(t *testing.T) {
	store := newMemStore()
	src := newColorTimeline()
	_ = src.SetTime(0.5)
	if err := store.ExportJSON(src, "in.json", domain.WithPadCount(255)); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	tl := domain.NewTimeline()
	_ = tl.AddTrack("stale")
	changes := 0
	tl.OnChange(func() { changes++ })

	res, err := NewImportCommand(store, tl, "in.json").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.Tracks != 3 || res.Keyframes != 2 {
		t.Errorf("unexpected result %+v", res)
	}
	if tl.HasTrack("stale") || tl.Time() != 0.5 {
		t.Errorf("timeline not replaced: %s", tl)
	}
	if changes != 1 {
		t.Errorf("expected 1 notification, got %d", changes)
	}
}

func TestImportCommand_FailureLeavesTimeline(t *testing.T) {
	store := newMemStore()
	store.files["bad.json"] = []byte(`{"tracks": ["x"], "keyframes": [{"time": 0, "nodes": [{"track": "x", "value": 1, "mode": 12}]}]}`)

	tl := newColorTimeline()
	before := tl.String()

	_, err := NewImportCommand(store, tl, "bad.json").Execute(context.Background())
	if !errors.Is(err, application.ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
	if tl.String() != before {
		t.Errorf("timeline changed on failed import: %s", tl)
	}

	_, err = NewImportCommand(store, tl, "missing.json").Execute(context.Background())
	if !errors.Is(err, application.ErrIO) {
		t.Errorf("expected io error, got %v", err)
	}
}

func TestLoadFramesCommand_Execute(t *testing.T) {
	store := newMemStore()
	_ = store.ExportJSON(newColorTimeline(), "keys.json", domain.WithPadCount(10))

	res, err := NewLoadFramesCommand(store, "keys.json", []string{"color_R", "color_G"}, 3).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(res.Frames.Tracks) != 2 {
		t.Errorf("expected 2 tracks, got %d", len(res.Frames.Tracks))
	}
	if got := len(res.Frames.Tracks["color_R"]); got != 3 {
		t.Errorf("expected cap of 3 frames, got %d", got)
	}

	if _, err := NewLoadFramesCommand(store, "keys.json", nil, -1).Execute(context.Background()); err == nil {
		t.Error("expected error for negative cap")
	}
}
