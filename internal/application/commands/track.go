package commands

import (
	"context"
	"fmt"

	"keyframer/internal/application"
	"keyframer/internal/domain"
)

// TrackResult contains the result of a track operation
type TrackResult struct {
	Track   string
	Changed bool
	Message string
}

// AddTrackCommand adds a track to every keyframe of a timeline
type AddTrackCommand struct {
	tl   *domain.Timeline
	Name string
}

// NewAddTrackCommand creates a new AddTrackCommand
func NewAddTrackCommand(tl *domain.Timeline, name string) *AddTrackCommand {
	return &AddTrackCommand{tl: tl, Name: name}
}

// Validate checks if the track name is usable
func (c *AddTrackCommand) Validate() error {
	return application.ValidateRequired("track", c.Name)
}

// Execute runs the add track command
func (c *AddTrackCommand) Execute(ctx context.Context) (*TrackResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.tl.HasTrack(c.Name) {
		return &TrackResult{
			Track:   c.Name,
			Message: fmt.Sprintf("Track %s already exists", c.Name),
		}, nil
	}

	if err := c.tl.AddTrack(c.Name); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	return &TrackResult{
		Track:   c.Name,
		Changed: true,
		Message: fmt.Sprintf("Added track %s", c.Name),
	}, nil
}

// RemoveTrackCommand removes a track from every keyframe of a timeline
type RemoveTrackCommand struct {
	tl   *domain.Timeline
	Name string
}

// NewRemoveTrackCommand creates a new RemoveTrackCommand
func NewRemoveTrackCommand(tl *domain.Timeline, name string) *RemoveTrackCommand {
	return &RemoveTrackCommand{tl: tl, Name: name}
}

// Validate checks if the track name is usable
func (c *RemoveTrackCommand) Validate() error {
	return application.ValidateRequired("track", c.Name)
}

// Execute runs the remove track command
func (c *RemoveTrackCommand) Execute(ctx context.Context) (*TrackResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.tl.HasTrack(c.Name) {
		return &TrackResult{
			Track:   c.Name,
			Message: fmt.Sprintf("No track named %s", c.Name),
		}, nil
	}

	if err := c.tl.RemoveTrack(c.Name); err != nil {
		return nil, fmt.Errorf("failed to remove track: %w", err)
	}

	return &TrackResult{
		Track:   c.Name,
		Changed: true,
		Message: fmt.Sprintf("Removed track %s", c.Name),
	}, nil
}
