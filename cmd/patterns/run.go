package main

import (
	"github.com/go-leo/patterns/catalog"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run demos",
		Long: `Run the named demos in the given order, or all demos when none is named.

Examples:
  # Run everything
  patterns run

  # Run the visitor and decorator demos
  patterns run visitor decorator`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &catalog.Runner{
				Registry: a.registry,
				Middlewares: []catalog.Middleware{
					catalog.Logging(a.logger),
					catalog.Recover(),
				},
			}
			return runner.Run(cmd.Context(), cmd.OutOrStdout(), args...)
		},
	}
}
