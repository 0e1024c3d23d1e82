package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/pkg/repo"
)

func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "commit <message>",
		Short:              "Record the staged changes as a new commit",
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return report(cmd, err)
			}
			// A missing operand reads as an empty message, so the
			// dedicated message condition fires instead of the
			// generic operand one.
			message := ""
			switch len(args) {
			case 0:
			case 1:
				message = args[0]
			default:
				return report(cmd, repo.ErrBadOperands)
			}
			_, err = r.Commit(message)
			return report(cmd, err)
		},
	}
}
