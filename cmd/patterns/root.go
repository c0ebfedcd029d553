package main

import (
	"github.com/go-leo/patterns/catalog"
	"github.com/go-leo/patterns/internal/config"
	"github.com/go-leo/patterns/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by all commands. It is filled in by setup before a
// command runs.
type app struct {
	registry *catalog.Registry

	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(registry *catalog.Registry) *cobra.Command {
	a := &app{registry: registry}
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Run design pattern demonstrations",
		Long: `patterns runs canonical design pattern demonstrations.

The visitor demo walks a sequence of components with one or more visitors,
showing double dispatch: the component picks the visit method, the visitor
picks the algorithm.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: console, json")

	cmd.AddCommand(
		newListCmd(a),
		newRunCmd(a),
		newVisitCmd(a),
		newCheckCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}
