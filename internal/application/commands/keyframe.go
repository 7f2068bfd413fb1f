package commands

import (
	"context"
	"fmt"

	"keyframer/internal/application"
	"keyframer/internal/domain"
)

// KeyframeResult contains the result of a keyframe operation
type KeyframeResult struct {
	Keyframe *domain.Keyframe // nil after a removal
	Time     float64
	Changed  bool
	Message  string
}

// timeArg turns an optional time into the variadic form the timeline takes
func timeArg(t *float64) []float64 {
	if t == nil {
		return nil
	}
	return []float64{*t}
}

func validateOptionalTime(t *float64) error {
	if t == nil {
		return nil
	}
	return application.ValidateTime("time", *t)
}

// AddKeyframeCommand inserts a keyframe, holding the previous keyframe's values
type AddKeyframeCommand struct {
	tl   *domain.Timeline
	Time *float64 // nil means the scrub position
}

// NewAddKeyframeCommand creates a new AddKeyframeCommand
func NewAddKeyframeCommand(tl *domain.Timeline, at *float64) *AddKeyframeCommand {
	return &AddKeyframeCommand{tl: tl, Time: at}
}

// Validate checks if the keyframe time is valid
func (c *AddKeyframeCommand) Validate() error {
	return validateOptionalTime(c.Time)
}

// Execute runs the add keyframe command
func (c *AddKeyframeCommand) Execute(ctx context.Context) (*KeyframeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	before := c.tl.Len()
	k, err := c.tl.AddKeyframe(timeArg(c.Time)...)
	if err != nil {
		return nil, fmt.Errorf("failed to add keyframe: %w", err)
	}

	res := &KeyframeResult{
		Keyframe: k,
		Time:     k.Time(),
		Changed:  c.tl.Len() != before,
	}
	if res.Changed {
		res.Message = fmt.Sprintf("Added keyframe at %s", domain.FormatNumber(k.Time()))
	} else {
		res.Message = fmt.Sprintf("Keyframe at %s already exists", domain.FormatNumber(k.Time()))
	}
	return res, nil
}

// RemoveKeyframeCommand deletes a keyframe. A missing keyframe is not an error.
type RemoveKeyframeCommand struct {
	tl   *domain.Timeline
	Time *float64
}

// NewRemoveKeyframeCommand creates a new RemoveKeyframeCommand
func NewRemoveKeyframeCommand(tl *domain.Timeline, at *float64) *RemoveKeyframeCommand {
	return &RemoveKeyframeCommand{tl: tl, Time: at}
}

// Validate checks if the keyframe time is valid
func (c *RemoveKeyframeCommand) Validate() error {
	return validateOptionalTime(c.Time)
}

// Execute runs the remove keyframe command
func (c *RemoveKeyframeCommand) Execute(ctx context.Context) (*KeyframeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	k, ok := c.tl.Keyframe(timeArg(c.Time)...)
	if !ok {
		t := c.tl.Time()
		if c.Time != nil {
			t = domain.RoundTime(*c.Time)
		}
		return &KeyframeResult{
			Time:    t,
			Message: fmt.Sprintf("No keyframe at %s", domain.FormatNumber(t)),
		}, nil
	}

	t := k.Time()
	c.tl.RemoveKeyframe(t)
	return &KeyframeResult{
		Time:    t,
		Changed: true,
		Message: fmt.Sprintf("Removed keyframe at %s", domain.FormatNumber(t)),
	}, nil
}

// MoveKeyframeCommand re-times an existing keyframe
type MoveKeyframeCommand struct {
	tl   *domain.Timeline
	From float64
	To   float64
}

// NewMoveKeyframeCommand creates a new MoveKeyframeCommand
func NewMoveKeyframeCommand(tl *domain.Timeline, from, to float64) *MoveKeyframeCommand {
	return &MoveKeyframeCommand{tl: tl, From: from, To: to}
}

// Validate checks if both times are valid
func (c *MoveKeyframeCommand) Validate() error {
	if err := application.ValidateTime("fromTime", c.From); err != nil {
		return err
	}
	return application.ValidateTime("toTime", c.To)
}

// Execute runs the move keyframe command
func (c *MoveKeyframeCommand) Execute(ctx context.Context) (*KeyframeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.tl.MoveKeyframe(c.From, c.To); err != nil {
		return nil, fmt.Errorf("failed to move keyframe: %w", err)
	}

	k, _ := c.tl.Keyframe(c.To)
	return &KeyframeResult{
		Keyframe: k,
		Time:     k.Time(),
		Changed:  domain.RoundTime(c.From) != k.Time(),
		Message: fmt.Sprintf("Moved keyframe %s to %s",
			domain.FormatNumber(domain.RoundTime(c.From)), domain.FormatNumber(k.Time())),
	}, nil
}
