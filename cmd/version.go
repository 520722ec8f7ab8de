package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renjuashokan/Dependencies/pkg/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information for the depsver binary",
		Run: func(cmd *cobra.Command, _ []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "depsver %s (commit %s, built %s)\n",
				info.Version, info.CommitHash, info.BuildDate)
		},
	}
}
