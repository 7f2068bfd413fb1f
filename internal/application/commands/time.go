package commands

import (
	"context"
	"fmt"

	"keyframer/internal/application"
	"keyframer/internal/domain"
)

// SetTimeResult contains the result of moving the scrub position
type SetTimeResult struct {
	Time       float64
	OnKeyframe bool
	Message    string
}

// SetTimeCommand moves the scrub position of a timeline
type SetTimeCommand struct {
	tl   *domain.Timeline
	Time float64
}

// NewSetTimeCommand creates a new SetTimeCommand
func NewSetTimeCommand(tl *domain.Timeline, t float64) *SetTimeCommand {
	return &SetTimeCommand{tl: tl, Time: t}
}

// Validate checks if the time is valid
func (c *SetTimeCommand) Validate() error {
	return application.ValidateTime("time", c.Time)
}

// Execute runs the set time command
func (c *SetTimeCommand) Execute(ctx context.Context) (*SetTimeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.tl.SetTime(c.Time); err != nil {
		return nil, fmt.Errorf("failed to set time: %w", err)
	}

	_, onKey := c.tl.Keyframe()
	return &SetTimeResult{
		Time:       c.tl.Time(),
		OnKeyframe: onKey,
		Message:    fmt.Sprintf("Time set to %s", domain.FormatNumber(c.tl.Time())),
	}, nil
}
