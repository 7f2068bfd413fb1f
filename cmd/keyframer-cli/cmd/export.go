package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"keyframer/internal/application"
	"keyframer/internal/application/commands"
)

var (
	exportFormat string
	exportPad    int
	exportBase   string
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the timeline to a file",
	Long: `Export the timeline as JSON, an Excel spreadsheet, or a C++ header.

The format follows the file extension (.json, .xlsx, .h) unless --format is
given. --pad applies to JSON only and repeats or truncates the keyframe list
to the given length.

Examples:
  keyframer-cli export anim.json --pad 255
  keyframer-cli export anim.xlsx
  keyframer-cli export keyframes.h
  keyframer-cli export all ./out`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		var format application.ExportFormat
		var err error
		if exportFormat != "" {
			format, err = application.ParseExportFormat(exportFormat)
		} else {
			format, err = application.FormatForPath(path)
		}
		if err != nil {
			return err
		}

		var pad *int
		if cmd.Flags().Changed("pad-count") {
			pad = &exportPad
		}

		result, err := commands.NewExportCommand(GetStore(), GetTimeline(), format, path, pad).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var exportAllCmd = &cobra.Command{
	Use:   "all [dir]",
	Short: "Export JSON, spreadsheet and header side by side",
	Long: `Write <base>.json (padded), <base>.xlsx and <base>.h into dir.

The directory defaults to the project's directory and the base name to the
project's name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := filepath.Dir(projectFile)
		if len(args) > 0 {
			dir = args[0]
		}
		base := exportBase
		if base == "" {
			base = strings.TrimSuffix(filepath.Base(projectFile), filepath.Ext(projectFile))
		}

		result, err := commands.NewExportAllCommand(GetStore(), GetTimeline(), dir, base, &padCount).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, p := range result.Paths {
			fmt.Println(p)
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportAllCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "", "json, excel or header (default: from extension)")
	exportCmd.Flags().IntVar(&exportPad, "pad-count", 0, "JSON only: keyframe list length")
	exportAllCmd.Flags().StringVar(&exportBase, "base", "", "base file name (default: project name)")
}
