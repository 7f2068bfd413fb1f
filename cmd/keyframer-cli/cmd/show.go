package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keyframer/internal/domain"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the whole timeline",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tl := GetTimeline()
		fmt.Printf("file:   %s\n", projectFile)
		fmt.Printf("time:   %s\n", domain.FormatNumber(tl.Time()))
		fmt.Printf("tracks: %s\n", strings.Join(tl.Tracks(), ", "))

		keyframes := tl.Keyframes()
		if len(keyframes) == 0 {
			fmt.Println("No keyframes.")
			return nil
		}
		fmt.Println()
		for _, k := range keyframes {
			printKeyframe(k)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
