package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"keyframer/internal/application"
	"keyframer/internal/domain"
	"keyframer/internal/ports"
)

// SampleTracks are the tracks of a new project
var SampleTracks = []string{"color_R", "color_G", "color_B"}

// NewSampleTimeline returns the starting timeline of a new project: the
// sample tracks with keyframes at 0 and 1.
func NewSampleTimeline() *domain.Timeline {
	tl := domain.NewTimeline()
	for _, track := range SampleTracks {
		_ = tl.AddTrack(track)
	}
	_, _ = tl.AddKeyframe(0)
	_, _ = tl.AddKeyframe(1)
	return tl
}

// OpenProjectResult contains the opened timeline
type OpenProjectResult struct {
	Timeline *domain.Timeline
	Created  bool // true when the file did not exist yet
	Message  string
}

// OpenProjectCommand loads a project file, or starts a sample project when
// the file does not exist.
type OpenProjectCommand struct {
	store ports.TimelineStore
	Path  string
}

// NewOpenProjectCommand creates a new OpenProjectCommand
func NewOpenProjectCommand(store ports.TimelineStore, path string) *OpenProjectCommand {
	return &OpenProjectCommand{store: store, Path: path}
}

// Validate checks the project path
func (c *OpenProjectCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the open project command
func (c *OpenProjectCommand) Execute(ctx context.Context) (*OpenProjectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tl, err := c.store.Load(c.Path)
	if errors.Is(err, os.ErrNotExist) {
		return &OpenProjectResult{
			Timeline: NewSampleTimeline(),
			Created:  true,
			Message:  fmt.Sprintf("New project %s", c.Path),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open project: %w", err)
	}

	return &OpenProjectResult{
		Timeline: tl,
		Message:  fmt.Sprintf("Opened %s", c.Path),
	}, nil
}
