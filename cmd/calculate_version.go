package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renjuashokan/Dependencies/internal/usecase"
)

func NewCalculateVersionCmd(uc *usecase.CalculateVersionUseCase) *cobra.Command {
	var ciOutput bool
	cmd := &cobra.Command{
		Use:   "calculate-version [tag]",
		Short: "Resolve and normalize the build version without writing anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawTag := ""
			if len(args) > 0 {
				rawTag = args[0]
			}
			version := uc.Execute(cmd.Context(), rawTag)

			if ciOutput {
				// GitHub Actions output format
				fmt.Fprintf(cmd.OutOrStdout(), "version=%s\n", version.Full)
				fmt.Fprintf(cmd.OutOrStdout(), "numeric_version=%s\n", version.Numeric)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", version.Full)
				fmt.Fprintf(cmd.OutOrStdout(), "Numeric version: %s\n", version.Numeric)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&ciOutput, "ci-output", false, "Output in CI-friendly format for GitHub Actions")
	return cmd
}
