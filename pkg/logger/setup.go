package logger

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// ParseLevel maps a flag value onto a charm log level, defaulting to info.
func ParseLevel(level string) charmlog.Level {
	switch level {
	case "debug":
		return charmlog.DebugLevel
	case "info":
		return charmlog.InfoLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// SetupFromFlags builds a logger from the root command's persistent flags.
func SetupFromFlags(cmd *cobra.Command) (Logger, error) {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-json flag: %w", err)
	}
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	cfg.JSON = logJSON
	cfg.Output = cmd.ErrOrStderr()
	return NewLogger(cfg), nil
}
