package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/pkg/repo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gitlet",
		Short:         "A tiny local version-control system",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Please enter a command.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "No command with that name exists.")
			return nil
		},
	}

	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newRmCmd())
	root.AddCommand(newCommitCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newGlobalLogCmd())
	root.AddCommand(newFindCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newBranchCmd())
	root.AddCommand(newRmBranchCmd())
	root.AddCommand(newCheckoutCmd())
	root.AddCommand(newResetCmd())
	root.AddCommand(newMergeCmd())

	return root
}

// report prints a defined outcome on stdout and swallows it. Anything
// else is an internal failure and propagates to a nonzero exit.
func report(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	var cond repo.Condition
	if errors.As(err, &cond) {
		fmt.Fprintln(cmd.OutOrStdout(), cond.Error())
		return nil
	}
	return err
}

// openRepo opens the repository in the working directory. It runs
// before operand validation, so a missing repository always wins.
func openRepo() (*repo.Repo, error) {
	return repo.Open(".")
}
