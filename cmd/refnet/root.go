package main

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/refnet/internal/config"
	"github.com/katalvlaran/refnet/internal/logging"
	"github.com/katalvlaran/refnet/metrics"
)

// app carries per-invocation state shared by subcommands.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath  string
	logLevel    string
	metricsFile string
	format      string
	seed        int64
	edgesPath   string

	cfg     config.Config
	log     logging.Logger
	reg     *prometheus.Registry
	metrics *metrics.Metrics
	runID   string
	ready   bool
}

// execute runs the CLI with args and returns the process exit code. A
// failure is logged through the run's logger, so it carries run_id and
// honours --log-level and logging.pretty.
func execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	a := &app{out: out, errOut: errOut}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.ExecuteContext(ctx); err != nil {
		a.logger().Error().Err(err).Msg("refnet failed")
		return 1
	}
	return 0
}

// logger returns the configured logger, or a plain one when setup never
// ran (bad flags, unreadable config).
func (a *app) logger() *logging.Logger {
	if !a.ready {
		l := logging.New(logging.Options{Level: a.logLevel, Out: a.errOut})
		return &l
	}
	return &a.log
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "refnet",
		Short:         "Referral network analytics and growth projections",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.flushMetrics()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile on exit")
	pf.StringVar(&a.format, "format", formatYAML, "output format: yaml or json")
	pf.Int64Var(&a.seed, "seed", 0, "random seed for sample data and simulations")

	root.AddCommand(
		a.statsCmd(),
		a.reachCmd(),
		a.simulateCmd(),
		a.daysCmd(),
		a.bonusCmd(),
		a.validateCmd(),
		a.exportCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.metricsFile != "" {
		cfg.Metrics.File = a.metricsFile
	}
	if cmd.Flags().Changed("seed") {
		seed := a.seed
		cfg.Simulation.Seed = &seed
	}
	if a.format != formatYAML && a.format != formatJSON {
		return errors.Errorf("unknown format %q", a.format)
	}

	a.cfg = cfg
	a.log = logging.New(logging.Options{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty, Out: a.errOut})
	a.reg = prometheus.NewRegistry()
	a.metrics = metrics.New(a.reg)
	a.runID = uuid.NewString()
	a.log = a.log.With().Str("run_id", a.runID).Str("command", cmd.Name()).Logger()
	a.ready = true
	a.log.Debug().Str("config", a.configPath).Msg("configuration loaded")
	return nil
}

func (a *app) flushMetrics() error {
	if a.cfg.Metrics.File == "" {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.Metrics.File, a.reg); err != nil {
		return errors.Wrapf(err, "write metrics to %s", a.cfg.Metrics.File)
	}
	a.log.Debug().Str("file", a.cfg.Metrics.File).Msg("metrics written")
	return nil
}

// seedOrZero returns the configured seed and whether one was set.
func (a *app) seedOrZero() (int64, bool) {
	if a.cfg.Simulation.Seed == nil {
		return 0, false
	}
	return *a.cfg.Simulation.Seed, true
}
