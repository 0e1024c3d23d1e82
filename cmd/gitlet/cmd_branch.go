package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/pkg/repo"
)

func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "branch <name>",
		Short:              "Create a branch at the current commit",
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return report(cmd, err)
			}
			if len(args) != 1 {
				return report(cmd, repo.ErrBadOperands)
			}
			return report(cmd, r.CreateBranch(args[0]))
		},
	}
}
