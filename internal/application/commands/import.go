package commands

import (
	"context"
	"fmt"

	"keyframer/internal/application"
	"keyframer/internal/domain"
	"keyframer/internal/ports"
)

// ImportResult contains the result of an import
type ImportResult struct {
	Path      string
	Tracks    int
	Keyframes int
	Message   string
}

// ImportCommand replaces a timeline's contents with a JSON keyframe file.
// The file is decoded in full before anything is swapped in.
type ImportCommand struct {
	store ports.TimelineStore
	tl    *domain.Timeline
	Path  string
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(store ports.TimelineStore, tl *domain.Timeline, path string) *ImportCommand {
	return &ImportCommand{store: store, tl: tl, Path: path}
}

// Validate checks the import parameters
func (c *ImportCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context) (*ImportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scratch, err := c.store.Load(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to import: %w", err)
	}
	c.tl.Replace(scratch)

	return &ImportResult{
		Path:      c.Path,
		Tracks:    len(c.tl.Tracks()),
		Keyframes: c.tl.Len(),
		Message: fmt.Sprintf("Imported %d tracks, %d keyframes from %s",
			len(c.tl.Tracks()), c.tl.Len(), c.Path),
	}, nil
}
