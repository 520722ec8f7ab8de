package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renjuashokan/Dependencies/internal/usecase"
)

func NewCreateGitTagCmd(uc *usecase.CreateGitTagUseCase) *cobra.Command {
	var (
		tagName string
		message string
	)
	cmd := &cobra.Command{
		Use:   "create-git-tag",
		Short: "Create and push an annotated release tag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := uc.Execute(cmd.Context(), tagName, message); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created and pushed tag %s\n", tagName)
			return nil
		},
	}
	cmd.Flags().StringVar(&tagName, "tag-name", "", "Name of the tag to create")
	cmd.Flags().StringVar(&message, "message", "", "Tag message (defaults to \"Release <tag>\")")
	_ = cmd.MarkFlagRequired("tag-name")
	return cmd
}
