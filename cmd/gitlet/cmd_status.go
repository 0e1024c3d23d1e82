package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/pkg/repo"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "status",
		Short:              "Show branches, staged changes, and untracked files",
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return report(cmd, err)
			}
			if len(args) != 0 {
				return report(cmd, repo.ErrBadOperands)
			}
			return report(cmd, r.Status(cmd.OutOrStdout()))
		},
	}
}
