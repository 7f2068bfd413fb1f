package commands

import (
	"context"
	"errors"
	"math"
	"testing"

	"keyframer/internal/application"
	"keyframer/internal/domain"
)

func TestAddKeyframeCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		at      *float64
		wantErr bool
	}{
		{name: "scrub position", at: nil},
		{name: "explicit time", at: ptr(2.5)},
		{name: "negative", at: ptr(-1.0), wantErr: true},
		{name: "NaN", at: ptr(math.NaN()), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&AddKeyframeCommand{Time: tt.at}).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddKeyframeCommand_Execute(t *testing.T) {
	tl := newColorTimeline()

	res, err := NewAddKeyframeCommand(tl, ptr(2.0)).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !res.Changed || res.Time != 2 || res.Message != "Added keyframe at 2" {
		t.Errorf("unexpected result %+v", res)
	}
	node, _ := res.Keyframe.Node("color_R")
	if node.Value != 1 || node.Mode != domain.ModeLinear {
		t.Errorf("new keyframe did not hold last value: %+v", node)
	}

	res, err = NewAddKeyframeCommand(tl, ptr(2.0)).Execute(context.Background())
	if err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if res.Changed || !contains(res.Message, "already exists") {
		t.Errorf("unexpected result for existing keyframe %+v", res)
	}
}

func TestAddKeyframeCommand_ScrubPosition(t *testing.T) {
	tl := newColorTimeline()
	_ = tl.SetTime(0.75)

	res, err := NewAddKeyframeCommand(tl, nil).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.Time != 0.75 {
		t.Errorf("expected keyframe at 0.75, got %v", res.Time)
	}
}

func TestRemoveKeyframeCommand_Execute(t *testing.T) {
	tl := newColorTimeline()

	res, err := NewRemoveKeyframeCommand(tl, ptr(1.0)).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !res.Changed || tl.Len() != 1 {
		t.Errorf("keyframe not removed: %+v", res)
	}

	res, err = NewRemoveKeyframeCommand(tl, ptr(1.0)).Execute(context.Background())
	if err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if res.Changed || res.Message != "No keyframe at 1" {
		t.Errorf("unexpected result for missing keyframe %+v", res)
	}
}

func TestMoveKeyframeCommand_Execute(t *testing.T) {
	tests := []struct {
		name    string
		from    float64
		to      float64
		wantErr error
	}{
		{name: "move", from: 1, to: 3},
		{name: "same time", from: 1, to: 1.001},
		{name: "occupied", from: 1, to: 0, wantErr: application.ErrConflict},
		{name: "missing", from: 4, to: 5, wantErr: application.ErrNotFound},
		{name: "negative", from: 1, to: -1, wantErr: application.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newColorTimeline()
			res, err := NewMoveKeyframeCommand(tl, tt.from, tt.to).Execute(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if _, ok := tl.Keyframe(tt.to); !ok {
				t.Errorf("no keyframe at %v after move", tt.to)
			}
			if res.Keyframe == nil {
				t.Error("result has no keyframe")
			}
		})
	}
}
