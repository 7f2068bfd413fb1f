package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"keyframer/internal/application/commands"
	"keyframer/internal/domain"
)

var (
	framesTracks []string
	framesMax    int
)

var framesCmd = &cobra.Command{
	Use:   "frames <path>",
	Short: "Print the per-track frame arrays of an export",
	Long: `Read a JSON export the way the playback engine does: one frame array per
track in document order, padding included, capped at --max frames.

Examples:
  keyframer-cli frames anim.json
  keyframer-cli frames anim.json --track color_R --max 16`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tracks []string
		if len(framesTracks) > 0 {
			tracks = framesTracks
		}

		result, err := commands.NewLoadFramesCommand(GetStore(), args[0], tracks, framesMax).Execute(context.Background())
		if err != nil {
			return err
		}

		fs := result.Frames
		fmt.Printf("time: %s\n", domain.FormatNumber(fs.Time))
		names := make([]string, 0, len(fs.Tracks))
		for name := range fs.Tracks {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			frames := fs.Tracks[name]
			fmt.Printf("%s (%d frames)\n", name, len(frames))
			for _, f := range frames {
				fmt.Printf("  %8s  %10s  %s\n", domain.FormatNumber(f.Time), domain.FormatNumber(f.Value), f.Mode)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(framesCmd)

	framesCmd.Flags().StringSliceVar(&framesTracks, "track", nil, "only load these tracks (repeatable)")
	framesCmd.Flags().IntVar(&framesMax, "max", domain.DefaultMaxFrames, "frames kept per track")
}
