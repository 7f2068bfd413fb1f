package commands

import (
	"context"
	"fmt"

	"keyframer/internal/application"
	"keyframer/internal/domain"
)

// SetNodeResult contains the result of editing a node
type SetNodeResult struct {
	Node    domain.Node
	Time    float64
	Message string
}

// SetNodeCommand updates the value and/or mode of one node of a keyframe
type SetNodeCommand struct {
	tl    *domain.Timeline
	Time  *float64 // nil means the scrub position
	Track string
	Value *float64
	Mode  *domain.Mode
}

// NewSetNodeCommand creates a new SetNodeCommand
func NewSetNodeCommand(tl *domain.Timeline, at *float64, track string, value *float64, mode *domain.Mode) *SetNodeCommand {
	return &SetNodeCommand{tl: tl, Time: at, Track: track, Value: value, Mode: mode}
}

// Validate checks the node edit
func (c *SetNodeCommand) Validate() error {
	if err := application.ValidateRequired("track", c.Track); err != nil {
		return err
	}
	if err := validateOptionalTime(c.Time); err != nil {
		return err
	}
	if c.Value == nil && c.Mode == nil {
		return &application.ValidationError{
			Field:   "node",
			Message: "nothing to set: give a value, a mode, or both",
		}
	}
	if c.Mode != nil && !c.Mode.Valid() {
		return &application.ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("unknown mode code %d", int(*c.Mode)),
		}
	}
	return nil
}

// Options converts the optional fields into node options
func (c *SetNodeCommand) Options() []domain.NodeOption {
	var opts []domain.NodeOption
	if c.Value != nil {
		opts = append(opts, domain.WithValue(*c.Value))
	}
	if c.Mode != nil {
		opts = append(opts, domain.WithMode(*c.Mode))
	}
	return opts
}

// Execute runs the set node command
func (c *SetNodeCommand) Execute(ctx context.Context) (*SetNodeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	k, ok := c.tl.Keyframe(timeArg(c.Time)...)
	if !ok {
		t := c.tl.Time()
		if c.Time != nil {
			t = domain.RoundTime(*c.Time)
		}
		return nil, &application.NotFoundError{Kind: "keyframe", Name: domain.FormatNumber(t)}
	}

	if err := k.Set(c.Track, c.Options()...); err != nil {
		return nil, fmt.Errorf("failed to set node: %w", err)
	}

	node, _ := k.Node(c.Track)
	return &SetNodeResult{
		Node: node,
		Time: k.Time(),
		Message: fmt.Sprintf("%s @ %s = %s (%s)",
			node.Track, domain.FormatNumber(k.Time()), domain.FormatNumber(node.Value), node.Mode),
	}, nil
}
