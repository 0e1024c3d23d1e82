package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/pkg/repo"
)

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "find <message>",
		Short:              "List the ids of commits with the exact message",
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
			return report(cmd, r.Find(cmd.OutOrStdout(), args[0]))
		},
	}
}
