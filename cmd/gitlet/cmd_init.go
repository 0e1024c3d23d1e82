package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/pkg/repo"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "init",
		Short:              "Create a new repository in the current directory",
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return report(cmd, repo.ErrBadOperands)
			}
			_, err := repo.Init(".")
			return report(cmd, err)
		},
	}
}
