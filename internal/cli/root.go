// Package cli implements the localfs command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const rootLong = `localfs inspects and manipulates the local filesystem through the same
facade the localfs library exposes: missing paths stat as "non-existent",
directory listings are depth-first pre-order, and every failure carries a
structured error code.

Configuration is layered: defaults, then the YAML file given with --config,
then the environment (LOCALFS_USE_MMAP, LOCALFS_LOG_LEVEL, optionally seeded
with --env-file), then flags.

Exit Codes:
  0 - Success
  1 - Operation failed
  2 - CLI usage error (invalid arguments or flags)
  3 - Panic or unexpected system error`

// NewRootCmd builds the localfs command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "localfs",
		Short:         "Local filesystem facade",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.close()
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging to stderr")
	pf.String("config", "", "Path to a YAML configuration file")
	pf.String("env-file", "", "Load environment variables from a dotenv file")
	pf.StringP("output", "o", formatText, "Output format: text, json or yaml")
	pf.Bool("mmap", false, "Read files through memory maps")
	pf.String("log-level", "", "Log level (debug, info, warn, error)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	cmd.AddCommand(
		newStatCmd(a),
		newLsCmd(a),
		newMkdirCmd(a),
		newRmCmd(a),
		newMvCmd(a),
		newCpCmd(a),
		newCatCmd(a),
		newWriteCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and reports any error on stderr in the
// selected output format.
func Execute() error {
	a := &app{}
	return execute(newRootCmd(a), a)
}

// execute runs cmd, reports its error and flushes the logger. cobra skips
// PersistentPostRun when a command fails, so the flush happens here too.
func execute(cmd *cobra.Command, a *app) error {
	defer a.close()

	err := cmd.Execute()
	if err != nil {
		format, _ := cmd.PersistentFlags().GetString("output")
		if rerr := reportError(cmd.ErrOrStderr(), format, err); rerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}
	return err
}

// usageArgs marks positional argument failures as usage errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
