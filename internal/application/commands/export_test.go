package commands

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"keyframer/internal/application"
	"keyframer/internal/domain"
)

func TestExportCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ExportCommand
		wantErr bool
		errMsg  string
	}{
		{
			name: "json",
			cmd:  ExportCommand{Format: application.FormatJSON, Path: "out.json"},
		},
		{
			name: "padded json",
			cmd:  ExportCommand{Format: application.FormatJSON, Path: "out.json", PadCount: ptr(255)},
		},
		{
			name:    "missing path",
			cmd:     ExportCommand{Format: application.FormatJSON},
			wantErr: true,
			errMsg:  "file path is required",
		},
		{
			name:    "unknown format",
			cmd:     ExportCommand{Format: "csv", Path: "out.csv"},
			wantErr: true,
			errMsg:  "unknown export format",
		},
		{
			name:    "negative pad",
			cmd:     ExportCommand{Format: application.FormatJSON, Path: "out.json", PadCount: ptr(-1)},
			wantErr: true,
			errMsg:  "cannot be negative",
		},
		{
			name:    "pad on header",
			cmd:     ExportCommand{Format: application.FormatHeader, Path: "out.h", PadCount: ptr(3)},
			wantErr: true,
			errMsg:  "padding only applies to json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestExportCommand_Execute(t *testing.T) {
	store := newMemStore()
	tl := newColorTimeline()

	res, err := NewExportCommand(store, tl, application.FormatHeader, "anim.h", nil).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.Message != "Exported header to anim.h" {
		t.Errorf("unexpected message %q", res.Message)
	}
	data, _ := store.get("anim.h")
	if !contains(string(data), "    { 1, 1, Linear },") {
		t.Errorf("header missing color_R row:\n%s", data)
	}
}

func TestExportCommand_ExecuteStoreFailure(t *testing.T) {
	store := newMemStore()
	store.fail["anim.json"] = &application.IOError{Op: "write", Path: "anim.json", Err: errMissing}

	_, err := NewExportCommand(store, newColorTimeline(), application.FormatJSON, "anim.json", nil).
		Execute(context.Background())
	if !errors.Is(err, application.ErrIO) {
		t.Errorf("expected io error, got %v", err)
	}
}

func TestExportAllCommand_Execute(t *testing.T) {
	store := newMemStore()
	tl := newColorTimeline()
	dir := filepath.Join("out", "anim")

	res, err := NewExportAllCommand(store, tl, dir, "keys", ptr(4)).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(res.Paths) != 3 {
		t.Fatalf("expected 3 paths, got %v", res.Paths)
	}
	for _, ext := range []string{".json", ".xlsx", ".h"} {
		if _, err := store.get(filepath.Join(dir, "keys"+ext)); err != nil {
			t.Errorf("missing export %s: %v", ext, err)
		}
	}

	fs, err := store.LoadFrames(filepath.Join(dir, "keys.json"), domain.FrameOptions{})
	if err != nil {
		t.Fatalf("LoadFrames failed: %v", err)
	}
	if got := len(fs.Tracks["color_R"]); got != 4 {
		t.Errorf("expected padded json with 4 frames, got %d", got)
	}
}

func TestExportAllCommand_FailureStopsGroup(t *testing.T) {
	store := newMemStore()
	store.fail[filepath.Join("out", "keys.xlsx")] = &application.IOError{Op: "write", Path: "keys.xlsx", Err: errMissing}

	_, err := NewExportAllCommand(store, newColorTimeline(), "out", "keys", nil).Execute(context.Background())
	if !errors.Is(err, application.ErrIO) {
		t.Errorf("expected io error, got %v", err)
	}
}

func TestExportAllCommand_Validate(t *testing.T) {
	cmd := &ExportAllCommand{Dir: "out", Base: filepath.Join("a", "b")}
	if err := cmd.Validate(); err == nil || !contains(err.Error(), "path separator") {
		t.Errorf("expected path separator error, got %v", err)
	}
}
