package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keyframer/internal/adapters/filesystem"
	"keyframer/internal/application"
	"keyframer/internal/application/commands"
	"keyframer/internal/config"
	"keyframer/internal/domain"
	"keyframer/internal/ports"
)

var (
	projectFile string
	padCount    int

	cfg      config.Config
	store    ports.TimelineStore
	timeline *domain.Timeline
	modified bool
)

var rootCmd = &cobra.Command{
	Use:   "keyframer-cli",
	Short: "CLI for editing keyframe timelines",
	Long: `keyframer-cli edits a keyframe project file from the command line.

A project is a set of named tracks and keyframes at times in seconds; each
keyframe holds one value and interpolation mode per track. Commands that
change the timeline save the project as padded JSON when they finish.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if projectFile == "" {
			projectFile = cfg.ProjectFile
		}
		if !cmd.Flags().Changed("pad") {
			padCount = cfg.PadCount
		}
		if err := application.ValidatePadCount(padCount); err != nil {
			return err
		}
		projectFile = application.EnsureJSONExt(filesystem.ExpandPath(projectFile))

		store = filesystem.NewStore()
		result, err := commands.NewOpenProjectCommand(store, projectFile).Execute(context.Background())
		if err != nil {
			return err
		}
		timeline = result.Timeline
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if !modified {
			return nil
		}
		if err := store.ExportJSON(timeline, projectFile, domain.WithPadAtLeast(padCount)); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectFile, "file", "f", "", "project file (default from config)")
	rootCmd.PersistentFlags().IntVar(&padCount, "pad", config.DefaultPadCount, "keyframe count of the saved project")
}

// GetTimeline returns the opened project timeline
func GetTimeline() *domain.Timeline {
	return timeline
}

// GetStore returns the initialized store
func GetStore() ports.TimelineStore {
	return store
}

// markModified saves the project once the command finishes
func markModified(changed bool) {
	if changed {
		modified = true
	}
}

// optionalTime parses the time argument at index i, if present
func optionalTime(args []string, i int) (*float64, error) {
	if len(args) <= i {
		return nil, nil
	}
	t, err := application.ParseTime("time", args[i])
	if err != nil {
		return nil, err
	}
	return &t, nil
}
