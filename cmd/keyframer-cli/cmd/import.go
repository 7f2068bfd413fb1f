package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"keyframer/internal/application/commands"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Replace the project with a JSON export",
	Long: `Replace the project's tracks, keyframes and time with the contents of a
JSON export. The project is left untouched if the file is invalid.

Examples:
  keyframer-cli import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewImportCommand(GetStore(), GetTimeline(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		markModified(true)
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
