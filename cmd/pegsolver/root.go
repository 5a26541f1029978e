package main

import (
	"github.com/go-ricrob/pegsolver/internal/config"
	"github.com/go-ricrob/pegsolver/internal/logging"
	"github.com/go-ricrob/pegsolver/solver"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pegsolver",
		Short: "pegsolver enumerates every game of triangular peg solitaire",
		Long: `pegsolver plays every possible game of peg solitaire on a triangular board,
starting with all holes filled but one, and counts the games that end with a single peg.`,
		SilenceUsage: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "YAML or JSON config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	runCmd := newRunCmd()
	rootCmd.AddCommand(runCmd, newBenchCmd(), newVersionCmd())

	// 'run' is the default command
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
	return rootCmd
}

func addSearchFlags(cmd *cobra.Command) {
	defaults := config.Default()
	cmd.Flags().Int("rows", defaults.Rows, "Number of board rows")
	cmd.Flags().Int("empty-row", defaults.EmptyRow, "Row of the initially empty hole")
	cmd.Flags().Int("empty-hole", defaults.EmptyHole, "Hole within the row of the initially empty hole")
	cmd.Flags().Int("workers", defaults.Workers, "Explore the first moves on this many goroutines")
	cmd.Flags().String("strategy", defaults.Strategy, "Search strategy (recursive, stack)")
}

// loadConfig reads the config file and applies the flags set on the command
// line. Only the default config file may be missing.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	load := config.Load
	if flags.Changed("config") {
		load = config.LoadFile
	}
	cfg, err := load(path)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("rows") {
		cfg.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("empty-row") {
		cfg.EmptyRow, _ = flags.GetInt("empty-row")
	}
	if flags.Changed("empty-hole") {
		cfg.EmptyHole, _ = flags.GetInt("empty-hole")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("strategy") {
		cfg.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Lookup("metrics-addr") != nil && flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}

	return cfg, cfg.Validate()
}

// solverOptions builds the options shared by run and bench from a validated config.
func solverOptions(cmd *cobra.Command, cfg config.Config) []solver.Option {
	level, _ := logging.ParseLevel(cfg.LogLevel)
	strategy, _ := solver.ParseStrategy(cfg.Strategy)
	return []solver.Option{
		solver.WithStrategy(strategy),
		solver.WithWorkers(cfg.Workers),
		solver.WithLogger(logging.NewWriter(cmd.ErrOrStderr(), level)),
	}
}
