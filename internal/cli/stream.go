package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/localfs/fs/core"
)

func newCatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat FILE...",
		Short: "Print file contents",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				if err := catFile(a, cmd, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func catFile(a *app, cmd *cobra.Command, p string) error {
	in, err := a.fs.OpenInputStream(p)
	if err != nil {
		return err
	}
	_, err = core.CopyStream(cmd.OutOrStdout(), in, a.fs.Options().CopyChunkSize)
	if cerr := in.Close(); err == nil {
		err = cerr
	}
	return err
}

func newWriteCmd(a *app) *cobra.Command {
	var appendMode bool

	cmd := &cobra.Command{
		Use:   "write FILE",
		Short: "Write standard input to a file",
		Long: `Write standard input to FILE, creating it if needed.
The file is truncated first unless --append is given.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				out core.OutputStream
				err error
			)
			if appendMode {
				out, err = a.fs.OpenAppendStream(args[0])
			} else {
				out, err = a.fs.OpenOutputStream(args[0])
			}
			if err != nil {
				return err
			}

			_, err = core.CopyStream(out, cmd.InOrStdin(), a.fs.Options().CopyChunkSize)
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&appendMode, "append", false, "Append instead of truncating")
	return cmd
}
