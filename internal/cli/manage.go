package cli

import (
	"github.com/spf13/cobra"
)

func newMvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mv SRC DEST",
		Short: "Move or rename a file or directory",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fs.Move(args[0], args[1])
		},
	}
}

func newCpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cp SRC DEST",
		Short: "Copy a file",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fs.CopyFile(args[0], args[1])
		},
	}
}
