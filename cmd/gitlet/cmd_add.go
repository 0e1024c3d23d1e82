package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/pkg/repo"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "add <file>",
		Short:              "Stage a file for the next commit",
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
			return report(cmd, r.Add(args[0]))
		},
	}
}
