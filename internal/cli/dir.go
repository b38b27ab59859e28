package cli

import (
	"github.com/spf13/cobra"
)

func newMkdirCmd(a *app) *cobra.Command {
	var parents bool

	cmd := &cobra.Command{
		Use:   "mkdir DIR...",
		Short: "Create directories",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, dir := range args {
				if err := a.fs.CreateDir(dir, parents); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "Create missing parent directories")
	return cmd
}

func newRmCmd(a *app) *cobra.Command {
	var (
		recursive bool
		contents  bool
	)

	cmd := &cobra.Command{
		Use:   "rm PATH...",
		Short: "Delete files or directories",
		Long: `Delete files. With --recursive, delete directories and everything in them.
With --contents, empty directories but keep them.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if recursive && contents {
				return usageErrorf("--recursive and --contents are mutually exclusive")
			}
			for _, p := range args {
				var err error
				switch {
				case contents:
					err = a.fs.DeleteDirContents(p)
				case recursive:
					err = a.fs.DeleteDir(p)
				default:
					err = a.fs.DeleteFile(p)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Delete directories recursively")
	cmd.Flags().BoolVar(&contents, "contents", false, "Delete directory contents only")
	return cmd
}
