package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"keyframer/internal/application/commands"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Manage tracks",
	Long: `Add, remove, or list the tracks of the project.

Examples:
  keyframer-cli track add color_A
  keyframer-cli track rm color_B
  keyframer-cli track list`,
}

var trackAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a track to every keyframe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddTrackCommand(GetTimeline(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		markModified(result.Changed)
		fmt.Println(result.Message)
		return nil
	},
}

var trackRemoveCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove"},
	Short:   "Remove a track from every keyframe",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRemoveTrackCommand(GetTimeline(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		markModified(result.Changed)
		fmt.Println(result.Message)
		return nil
	},
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracks in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, track := range GetTimeline().Tracks() {
			fmt.Println(track)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.AddCommand(trackAddCmd)
	trackCmd.AddCommand(trackRemoveCmd)
	trackCmd.AddCommand(trackListCmd)
}
