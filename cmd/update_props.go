package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renjuashokan/Dependencies/internal/config"
	"github.com/renjuashokan/Dependencies/internal/usecase"
)

func NewUpdatePropsCmd(uc *usecase.UpdatePropsUseCase, cfg *config.Config) *cobra.Command {
	var (
		output   string
		holder   string
		dryRun   bool
		ciOutput bool
	)
	cmd := &cobra.Command{
		Use:   "update-props [tag]",
		Short: "Derive the build version and overwrite the shared version property file",
		Long: `Derive the build version from an explicit tag or the latest repository tag
and overwrite the shared version property file consumed by every project in
the build. When no usable tag exists the default version is stamped and a
warning is logged; the command still succeeds.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawTag := ""
			if len(args) > 0 {
				rawTag = args[0]
			}
			version, err := uc.Execute(cmd.Context(), rawTag, usecase.UpdatePropsOptions{
				OutputPath:      output,
				CopyrightHolder: holder,
				DryRun:          dryRun,
			})
			if err != nil {
				return err
			}

			if ciOutput {
				// GitHub Actions output format
				fmt.Fprintf(cmd.OutOrStdout(), "version=%s\n", version.Full)
				fmt.Fprintf(cmd.OutOrStdout(), "numeric_version=%s\n", version.Numeric)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", cfg.OutputPath, "Path of the version property file")
	cmd.Flags().StringVar(&holder, "copyright-holder", cfg.CopyrightHolder, "Name used in the copyright line")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve the version without writing the file")
	cmd.Flags().BoolVar(&ciOutput, "ci-output", false, "Output in CI-friendly format for GitHub Actions")
	return cmd
}
