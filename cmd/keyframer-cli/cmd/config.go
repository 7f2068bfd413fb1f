package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyframer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings after applying the config file and environment
overrides, as YAML.

The config file is read from $KEYFRAMER_CONFIG, or keyframer/config.yaml in
the user config directory. KEYFRAMER_FILE and KEYFRAMER_AUTOSAVE override it.`,
	Args: cobra.NoArgs,
	// No project needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n", config.Path())
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
