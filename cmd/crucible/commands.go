package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/search"
)

// errNoPathWithinBudget makes the process exit non-zero after the budget
// outcome has been printed.
var errNoPathWithinBudget = errors.New("crucible: no path within budget")

// app carries what every subcommand shares once PersistentPreRunE has run.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        Config
	log        zerolog.Logger
	shutdown   func(context.Context) error
	stopProf   interface{ Stop() }
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "crucible",
		Short:         "Cheapest constrained routes across weighted digit grids",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Int("free-max", search.DefaultFreeTurn().Max, "free-turn: longest straight run")
	pf.Int("forced-min", search.DefaultForcedRun().Min, "forced-run: shortest leap")
	pf.Int("forced-max", search.DefaultForcedRun().Max, "forced-run: longest leap")
	pf.Int("max-expansions", 0, "stop after this many expanded states (0 = unlimited)")
	pf.Int64("max-cost", -1, "stop once every pending route costs more than this (-1 = unlimited)")
	pf.Bool("trace", false, "export trace spans to stderr")
	pf.Bool("metrics", false, "export search metrics to stderr")
	pf.String("cpuprofile", "", "write a CPU profile into this directory")
	a.bind(pf.Lookup, map[string]string{
		"log_level":      "log-level",
		"free.max_run":   "free-max",
		"forced.min_run": "forced-min",
		"forced.max_run": "forced-max",
		"max_expansions": "max-expansions",
		"max_cost":       "max-cost",
		"trace":          "trace",
		"metrics":        "metrics",
		"cpuprofile":     "cpuprofile",
	})

	root.AddCommand(a.newSolveCmd(), a.newRenderCmd())

	return root
}

// bind attaches viper keys to the named flags.
func (a *app) bind(lookup func(string) *pflag.Flag, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// setup loads configuration, then starts logging, telemetry and profiling.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Searches log from several goroutines and exporters flush on their own.
	stderr := zerolog.SyncWriter(cmd.ErrOrStderr())
	a.log = newLogger(stderr, cfg.LogLevel, isTerminal(cmd.ErrOrStderr()))

	if cfg.Trace || cfg.Metrics {
		shutdown, err := setupTelemetry(stderr, cfg.Trace, cfg.Metrics)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		a.shutdown = shutdown
	}
	if cfg.CPUProfile != "" {
		a.stopProf = profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.CPUProfile),
			profile.Quiet, profile.NoShutdownHook)
		a.log.Debug().Str("dir", cfg.CPUProfile).Msg("cpu profiling enabled")
	}

	return nil
}

// teardown flushes telemetry and profiles. Cobra skips it when RunE fails,
// so the commands call it themselves on that path too.
func (a *app) teardown() error {
	if a.stopProf != nil {
		a.stopProf.Stop()
		a.stopProf = nil
	}
	if a.shutdown != nil {
		shutdown := a.shutdown
		a.shutdown = nil
		if err := shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutdown telemetry: %w", err)
		}
	}

	return nil
}

func (a *app) newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Print the minimal heat loss under every configured regime",
		Long: `Reads a digit grid from FILE (or stdin when FILE is omitted or "-") and
prints the cheapest cost from the top-left to the bottom-right cell for every
configured regime. Regimes run concurrently on the shared grid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.failed(a.runSolve(cmd, args))
		},
	}

	f := cmd.Flags()
	f.String("format", formatText, "output format: text, json or yaml")
	f.StringSlice("regime", []string{search.FreeTurnName, search.ForcedRunName}, "regimes to solve")
	f.Bool("path", false, "include the optimal route and its rendering")
	a.bind(f.Lookup, map[string]string{
		"format":  "format",
		"regimes": "regime",
		"path":    "path",
	})

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	g, err := readGrid(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	regimes, err := a.cfg.regimes()
	if err != nil {
		return err
	}

	outs, err := solveAll(cmd.Context(), a.log, g, regimes, a.cfg.searchOptions())
	if err != nil {
		return err
	}
	if err := writeOutcomes(cmd.OutOrStdout(), a.cfg.Format, outs); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	for _, o := range outs {
		if o.Status == statusBudget {
			return fmt.Errorf("%w: %s", errNoPathWithinBudget, o.Regime)
		}
	}

	return nil
}

func (a *app) newRenderCmd() *cobra.Command {
	var regimeName string
	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Draw the optimal route of one regime over the grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.failed(a.runRender(cmd, args, regimeName))
		},
	}
	cmd.Flags().StringVar(&regimeName, "regime", search.FreeTurnName, "regime to render")

	return cmd
}

func (a *app) runRender(cmd *cobra.Command, args []string, regimeName string) error {
	g, err := readGrid(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	r, err := a.cfg.regime(regimeName)
	if err != nil {
		return err
	}

	opts := append(a.cfg.searchOptions(), search.WithReturnPath())
	outs, err := solveAll(cmd.Context(), a.log, g, []search.Regime{r}, opts)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch o := outs[0]; o.Status {
	case statusFound:
		fmt.Fprintf(w, "%s: %d\n%s", o.Regime, o.Cost, o.Rendering)
	case statusUnreachable:
		fmt.Fprintf(w, "%s: unreachable\n", o.Regime)
	default:
		fmt.Fprintf(w, "%s: no path within budget\n", o.Regime)
		return fmt.Errorf("%w: %s", errNoPathWithinBudget, o.Regime)
	}

	return nil
}

// failed runs teardown on the error path, where cobra skips PostRun hooks.
func (a *app) failed(err error) error {
	if err == nil {
		return nil
	}

	return errors.Join(err, a.teardown())
}

// readGrid parses the grid named by args[0], or stdin when there is none.
func readGrid(stdin io.Reader, args []string) (*grid.Grid, error) {
	if len(args) == 0 || args[0] == "-" {
		return grid.Read(stdin)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open grid: %w", err)
	}
	defer f.Close()

	return grid.Read(f)
}
