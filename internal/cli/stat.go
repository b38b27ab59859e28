package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/localfs/fs/core"
)

// statConcurrency bounds the number of paths stat'ed at once.
const statConcurrency = 8

func newStatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat PATH...",
		Short: "Show the attributes of one or more paths",
		Long: `Show the type, size and modification time of each path.

A missing path is not an error: it is reported with type "non-existent".`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := statAll(a.fs, args)
			if err != nil {
				return err
			}
			return printer{w: cmd.OutOrStdout(), format: a.output}.stats(results)
		},
	}
}

// statAll stats every path concurrently and returns the results in argument
// order, or the first error encountered.
func statAll(fsys core.StatFS, paths []string) ([]core.FileStats, error) {
	results := make([]core.FileStats, len(paths))

	var g errgroup.Group
	g.SetLimit(statConcurrency)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			st, err := fsys.Stat(p)
			if err != nil {
				return err
			}
			results[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
