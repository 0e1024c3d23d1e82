package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/pkg/repo"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "merge <branch>",
		Short:              "Merge a branch into the active one",
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
			return report(cmd, r.Merge(cmd.OutOrStdout(), args[0]))
		},
	}
}
