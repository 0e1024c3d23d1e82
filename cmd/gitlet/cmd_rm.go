package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/pkg/repo"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "rm <file>",
		Short:              "Unstage a file and mark it for removal",
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
			return report(cmd, r.Rm(args[0]))
		},
	}
}
