package cli

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jmgilman/localfs/fs/core"
	"github.com/jmgilman/localfs/internal/watch"
)

func newLsCmd(a *app) *cobra.Command {
	var (
		recursive    bool
		maxDepth     int
		allowMissing bool
		watchTree    bool
	)

	cmd := &cobra.Command{
		Use:   "ls [DIR]",
		Short: "List the entries below a directory",
		Long: `List the entries below DIR (default ".") in depth-first pre-order.

With --max-depth N, directories found at depth N or deeper are not entered;
--max-depth 0 lists direct children only. --max-depth implies --recursive.
With --watch, changes below the listed tree are printed until interrupted.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			var opts []core.SelectorOption
			if recursive {
				opts = append(opts, core.Recursive())
			}
			if cmd.Flags().Changed("max-depth") {
				opts = append(opts, core.WithMaxRecursion(maxDepth))
			}
			if allowMissing {
				opts = append(opts, core.AllowNonExistent())
			}
			sel := core.NewSelector(dir, opts...)

			entries, err := a.fs.StatSelector(sel)
			if err != nil {
				return err
			}
			p := printer{w: cmd.OutOrStdout(), format: a.output}
			if err := p.stats(entries); err != nil {
				return err
			}
			if !watchTree {
				return nil
			}

			w, err := watch.New(a.fs, sel, watch.WithLogger(a.logger))
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return w.Run(ctx, func(batch []watch.Event) {
				if err := p.events(batch); err != nil {
					a.logger.Sugar().Warnf("failed to print events: %v", err)
				}
			})
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	f.IntVar(&maxDepth, "max-depth", 0, "Maximum recursion depth (implies --recursive)")
	f.BoolVar(&allowMissing, "allow-missing", false, "Treat a missing directory as empty")
	f.BoolVar(&watchTree, "watch", false, "Keep running and print changes")
	return cmd
}
