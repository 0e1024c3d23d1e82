package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/pkg/repo"
)

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "checkout [commit] -- <file> | checkout <branch>",
		Short:              "Restore a file or switch branches",
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return report(cmd, err)
			}
			switch {
			case len(args) == 1:
				return report(cmd, r.CheckoutBranch(args[0]))
			case len(args) == 2 && args[0] == "--":
				return report(cmd, r.CheckoutFile(args[1]))
			case len(args) == 3 && args[1] == "--":
				return report(cmd, r.CheckoutFileAt(args[0], args[2]))
			default:
				return report(cmd, repo.ErrBadOperands)
			}
		},
	}
}
