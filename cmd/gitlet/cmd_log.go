package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/pkg/repo"
)

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "log",
		Short:              "Show the active branch's history",
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
			return report(cmd, r.Log(cmd.OutOrStdout()))
		},
	}
}
