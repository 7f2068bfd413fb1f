package commands

import (
	"context"
	"fmt"

	"keyframer/internal/application"
	"keyframer/internal/domain"
	"keyframer/internal/ports"
)

// LoadFramesResult contains per-track frame arrays read from an export
type LoadFramesResult struct {
	Frames  *domain.FrameSet
	Message string
}

// LoadFramesCommand reads an exported file the way the playback engine does
type LoadFramesCommand struct {
	store  ports.TimelineStore
	Path   string
	Tracks []string // nil loads every track
	Max    int      // zero means domain.DefaultMaxFrames
}

// NewLoadFramesCommand creates a new LoadFramesCommand
func NewLoadFramesCommand(store ports.TimelineStore, path string, tracks []string, limit int) *LoadFramesCommand {
	return &LoadFramesCommand{store: store, Path: path, Tracks: tracks, Max: limit}
}

// Validate checks the load parameters
func (c *LoadFramesCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	if c.Max < 0 {
		return &application.ValidationError{
			Field:   "max",
			Message: fmt.Sprintf("frame cap cannot be negative: %d", c.Max),
		}
	}
	return nil
}

// Execute runs the load frames command
func (c *LoadFramesCommand) Execute(ctx context.Context) (*LoadFramesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	fs, err := c.store.LoadFrames(c.Path, domain.FrameOptions{Tracks: c.Tracks, Max: c.Max})
	if err != nil {
		return nil, fmt.Errorf("failed to load frames: %w", err)
	}

	return &LoadFramesResult{
		Frames:  fs,
		Message: fmt.Sprintf("Loaded %d tracks from %s", len(fs.Tracks), c.Path),
	}, nil
}
