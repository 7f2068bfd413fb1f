package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"keyframer/internal/application"
	"keyframer/internal/application/commands"
	"keyframer/internal/domain"
)

var timeCmd = &cobra.Command{
	Use:   "time [seconds]",
	Short: "Print or set the scrub time",
	Long: `Without arguments, print the project's scrub time. With a time, move the
scrub position there; it is saved with the project.

Examples:
  keyframer-cli time
  keyframer-cli time 2.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tl := GetTimeline()
		if len(args) == 0 {
			fmt.Println(domain.FormatNumber(tl.Time()))
			return nil
		}

		t, err := application.ParseTime("time", args[0])
		if err != nil {
			return err
		}
		before := tl.Time()
		result, err := commands.NewSetTimeCommand(tl, t).Execute(context.Background())
		if err != nil {
			return err
		}
		markModified(result.Time != before)
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timeCmd)
}
