package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config as JSON",
	Long: `Print the config after validation: missing fields take their defaults
as do zeros in fields that must be positive, and other out-of-range values
are clamped. The output is itself a valid
config.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeJSON(cmd.OutOrStdout(), loadConfig(cmd))
	},
}
