package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"keyframer/internal/application"
	"keyframer/internal/application/commands"
	"keyframer/internal/domain"
)

var (
	setTime  string
	setValue string
	setMode  string
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage keyframes",
	Long: `Add, remove, move, edit, or show keyframes.

Times are in seconds and rounded to 2 decimals. Commands that take an
optional time default to the project's scrub time.

Examples:
  keyframer-cli key add 2.5
  keyframer-cli key rm 2.5
  keyframer-cli key move 1 1.5
  keyframer-cli key set color_R --time 1 --value 0.25 --mode Smoothstep
  keyframer-cli key show 1`,
}

var keyAddCmd = &cobra.Command{
	Use:   "add [time]",
	Short: "Add a keyframe holding the previous keyframe's values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := optionalTime(args, 0)
		if err != nil {
			return err
		}
		result, err := commands.NewAddKeyframeCommand(GetTimeline(), at).Execute(context.Background())
		if err != nil {
			return err
		}
		markModified(result.Changed)
		fmt.Println(result.Message)
		return nil
	},
}

var keyRemoveCmd = &cobra.Command{
	Use:     "rm [time]",
	Aliases: []string{"remove"},
	Short:   "Remove a keyframe",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := optionalTime(args, 0)
		if err != nil {
			return err
		}
		result, err := commands.NewRemoveKeyframeCommand(GetTimeline(), at).Execute(context.Background())
		if err != nil {
			return err
		}
		markModified(result.Changed)
		fmt.Println(result.Message)
		return nil
	},
}

var keyMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move a keyframe to a new time",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := application.ParseTime("fromTime", args[0])
		if err != nil {
			return err
		}
		to, err := application.ParseTime("toTime", args[1])
		if err != nil {
			return err
		}
		result, err := commands.NewMoveKeyframeCommand(GetTimeline(), from, to).Execute(context.Background())
		if err != nil {
			return err
		}
		markModified(result.Changed)
		fmt.Println(result.Message)
		return nil
	},
}

var keySetCmd = &cobra.Command{
	Use:   "set <track>",
	Short: "Set a track's value and/or mode on a keyframe",
	Long: `Set the value, the interpolation mode, or both, of one track on a keyframe.

Modes are given by name (Step, Linear, QuadraticIn, QuadraticOut, Smoothstep)
or by code 0-4.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var at, value *float64
		var mode *domain.Mode

		if cmd.Flags().Changed("time") {
			t, err := application.ParseTime("time", setTime)
			if err != nil {
				return err
			}
			at = &t
		}
		if cmd.Flags().Changed("value") {
			v, err := application.ParseValue(setValue)
			if err != nil {
				return err
			}
			value = &v
		}
		if cmd.Flags().Changed("mode") {
			m, err := application.ParseMode(setMode)
			if err != nil {
				return err
			}
			mode = &m
		}

		result, err := commands.NewSetNodeCommand(GetTimeline(), at, args[0], value, mode).Execute(context.Background())
		if err != nil {
			return err
		}
		markModified(true)
		fmt.Println(result.Message)
		return nil
	},
}

var keyShowCmd = &cobra.Command{
	Use:   "show [time]",
	Short: "Show the nodes of a keyframe",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tl := GetTimeline()
		at, err := optionalTime(args, 0)
		if err != nil {
			return err
		}
		t := tl.Time()
		if at != nil {
			t = *at
		}

		k, ok := tl.Keyframe(t)
		if !ok {
			return &application.NotFoundError{Kind: "keyframe", Name: domain.FormatNumber(domain.RoundTime(t))}
		}
		printKeyframe(k)
		return nil
	},
}

func printKeyframe(k *domain.Keyframe) {
	fmt.Printf("%s\n", domain.FormatNumber(k.Time()))
	for _, n := range k.Nodes() {
		fmt.Printf("  %-16s %10s  %s\n", n.Track, domain.FormatNumber(n.Value), n.Mode)
	}
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keyAddCmd)
	keyCmd.AddCommand(keyRemoveCmd)
	keyCmd.AddCommand(keyMoveCmd)
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyShowCmd)

	keySetCmd.Flags().StringVarP(&setTime, "time", "t", "", "keyframe time (default: scrub time)")
	keySetCmd.Flags().StringVar(&setValue, "value", "", "new value")
	keySetCmd.Flags().StringVarP(&setMode, "mode", "m", "", "new interpolation mode")
}
