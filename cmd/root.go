package cmd

import (
	"github.com/spf13/cobra"

	"github.com/renjuashokan/Dependencies/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "depsver",
	Short:         "Stamp the shared version properties for the Dependencies build",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		log, err := logger.SetupFromFlags(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(logger.ContextWithLogger(cmd.Context(), log))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
}

// Execute wires the commands and runs the CLI.
func Execute() error {
	if err := InitCommands(); err != nil {
		return err
	}
	return rootCmd.Execute()
}
