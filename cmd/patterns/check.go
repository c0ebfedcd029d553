package main

import (
	"fmt"

	"github.com/go-leo/patterns/internal/dispatchcheck"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "check [package...]",
		Short: "Check the visitor dispatch protocol of Go packages",
		Long: `Check that every component's Accept calls exactly its own Visitor method and
that every Visitor method is reached by some component. Packages default to ./...

Examples:
  # Check this module's visitor package
  patterns check ./visitor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"./..."}
			}
			problems, err := dispatchcheck.Check(dir, args...)
			if err != nil {
				return err
			}
			for _, problem := range problems {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), problem.String()); err != nil {
					return err
				}
			}
			if len(problems) > 0 {
				return fmt.Errorf("found %d dispatch problems", len(problems))
			}
			a.logger.Info("dispatch check passed", zap.Strings("packages", args))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory the package patterns are relative to")
	return cmd
}
