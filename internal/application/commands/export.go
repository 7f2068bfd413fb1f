package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"keyframer/internal/application"
	"keyframer/internal/domain"
	"keyframer/internal/ports"
)

// ExportResult contains the result of an export
type ExportResult struct {
	Format  application.ExportFormat
	Path    string
	Message string
}

// ExportCommand writes a timeline to a file in one format
type ExportCommand struct {
	store    ports.TimelineStore
	tl       *domain.Timeline
	Format   application.ExportFormat
	Path     string
	PadCount *int // JSON only; nil exports the keyframes as they are
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(store ports.TimelineStore, tl *domain.Timeline, format application.ExportFormat, path string, padCount *int) *ExportCommand {
	return &ExportCommand{store: store, tl: tl, Format: format, Path: path, PadCount: padCount}
}

// Validate checks the export parameters
func (c *ExportCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	if _, err := application.ParseExportFormat(string(c.Format)); err != nil {
		return err
	}
	if c.PadCount != nil {
		if c.Format != application.FormatJSON {
			return &application.ValidationError{
				Field:   "padCount",
				Message: fmt.Sprintf("padding only applies to json exports, not %s", c.Format),
			}
		}
		return application.ValidatePadCount(*c.PadCount)
	}
	return nil
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := export(c.store, c.tl, c.Format, c.Path, c.PadCount); err != nil {
		return nil, fmt.Errorf("failed to export %s: %w", c.Format, err)
	}

	return &ExportResult{
		Format:  c.Format,
		Path:    c.Path,
		Message: fmt.Sprintf("Exported %s to %s", c.Format, c.Path),
	}, nil
}

func export(store ports.TimelineStore, tl *domain.Timeline, format application.ExportFormat, path string, padCount *int) error {
	format, err := application.ParseExportFormat(string(format))
	if err != nil {
		return err
	}
	switch format {
	case application.FormatExcel:
		return store.ExportExcel(tl, path)
	case application.FormatHeader:
		return store.ExportHeader(tl, path)
	default:
		var opts []domain.ExportOption
		if padCount != nil {
			opts = append(opts, domain.WithPadCount(*padCount))
		}
		return store.ExportJSON(tl, path, opts...)
	}
}

// ExportAllResult contains the result of exporting every format
type ExportAllResult struct {
	Paths   []string
	Message string
}

// ExportAllCommand writes the JSON, spreadsheet and header exports side by
// side, sharing a base name.
type ExportAllCommand struct {
	store    ports.TimelineStore
	tl       *domain.Timeline
	Dir      string
	Base     string
	PadCount *int
}

// NewExportAllCommand creates a new ExportAllCommand
func NewExportAllCommand(store ports.TimelineStore, tl *domain.Timeline, dir, base string, padCount *int) *ExportAllCommand {
	return &ExportAllCommand{store: store, tl: tl, Dir: dir, Base: base, PadCount: padCount}
}

// Validate checks the export parameters
func (c *ExportAllCommand) Validate() error {
	if err := application.ValidateRequired("dir", c.Dir); err != nil {
		return err
	}
	if err := application.ValidateRequired("base", c.Base); err != nil {
		return err
	}
	if strings.ContainsRune(c.Base, filepath.Separator) {
		return &application.ValidationError{
			Field:   "base",
			Message: fmt.Sprintf("base name cannot contain a path separator: %q", c.Base),
		}
	}
	if c.PadCount != nil {
		return application.ValidatePadCount(*c.PadCount)
	}
	return nil
}

// Paths returns the file each format is written to
func (c *ExportAllCommand) Paths() map[application.ExportFormat]string {
	paths := make(map[application.ExportFormat]string)
	for _, f := range application.ExportFormats() {
		paths[f] = filepath.Join(c.Dir, c.Base+f.Extension())
	}
	return paths
}

// Execute runs the exports concurrently against a snapshot of the
// timeline, so the live timeline may keep changing meanwhile.
func (c *ExportAllCommand) Execute(ctx context.Context) (*ExportAllResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	snapshot := c.tl.Clone()
	paths := c.Paths()

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range application.ExportFormats() {
		path := paths[format]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pad := c.PadCount
			if format != application.FormatJSON {
				pad = nil
			}
			if err := export(c.store, snapshot, format, path, pad); err != nil {
				return fmt.Errorf("failed to export %s: %w", format, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var written []string
	for _, f := range application.ExportFormats() {
		written = append(written, paths[f])
	}
	return &ExportAllResult{
		Paths:   written,
		Message: fmt.Sprintf("Exported %d files to %s", len(written), c.Dir),
	}, nil
}
