package main

import (
	"github.com/go-leo/patterns/decorator"
	"github.com/go-leo/patterns/internal/render"
	"github.com/go-leo/patterns/visitor"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type visitOptions struct {
	elements []string
	visitors []string
	format   string
}

func newVisitCmd(a *app) *cobra.Command {
	opts := &visitOptions{}
	cmd := &cobra.Command{
		Use:   "visit",
		Short: "Walk components with visitors",
		Long: `Walk a sequence of components with each visitor in turn and print the results.

Components are a (ConcreteComponentA) and b (ConcreteComponentB). Visitors are
1 (ConcreteVisitor1) and 2 (ConcreteVisitor2). Defaults come from the config.

Examples:
  # Walk b then a with ConcreteVisitor2 only
  patterns visit -e b,a -v 2

  # Print JSON
  patterns visit -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("elements") {
				opts.elements = a.cfg.Visit.Elements
			}
			if !cmd.Flags().Changed("visitors") {
				opts.visitors = a.cfg.Visit.Visitors
			}
			if !cmd.Flags().Changed("format") {
				opts.format = a.cfg.Visit.Format
			}
			return runVisit(cmd, a.logger, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.elements, "elements", "e", nil, "components to walk, in order")
	flags.StringSliceVarP(&opts.visitors, "visitors", "v", nil, "visitors to walk with, in order")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: text, json, protojson")
	return cmd
}

func runVisit(cmd *cobra.Command, logger *zap.Logger, opts *visitOptions) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	components, err := visitor.Parse(opts.elements...)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	var collector visitor.Collector
	for _, name := range opts.visitors {
		v, err := visitor.NewVisitor(name, &collector)
		if err != nil {
			return err
		}
		visitor.Walk(components, decorator.Chain[visitor.Visitor](v, visitor.Logging(logger)))
	}
	results := collector.Results()
	logger.Info("visit finished",
		zap.Int("components", len(components)),
		zap.Int("visitors", len(opts.visitors)),
		zap.Int("results", len(results)),
	)
	return render.Render(cmd.OutOrStdout(), format, results)
}
