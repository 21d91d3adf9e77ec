// Command defkcheck runs the keyword-function self-checks and exits non-zero
// when any of them fails.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ygrebnov/defk/internal/selfcheck"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		filter  string
	)

	cmd := &cobra.Command{
		Use:           "defkcheck",
		Short:         "Run defk self-checks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			rep := selfcheck.Run(selfcheck.Cases(), filter, logger)
			failed := rep.Failed()
			fmt.Fprintf(cmd.OutOrStdout(), "%d checks, %d failed\n", len(rep.Results), len(failed))
			if len(failed) > 0 {
				return fmt.Errorf("%d checks failed", len(failed))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every check")
	cmd.Flags().StringVar(&filter, "run", "", "Only run checks whose name contains this substring")
	return cmd
}
