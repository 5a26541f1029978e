package main

import (
	"fmt"
	"time"

	"github.com/go-ricrob/pegsolver/internal/report"
	"github.com/go-ricrob/pegsolver/solver"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the search repeatedly and report timings",
		Long: `Runs the full search several times, prints the elapsed time of every run and
the mean of all runs except the fastest and the slowest.`,
		Args: cobra.NoArgs,
		RunE: runBench,
	}

	addSearchFlags(benchCmd)
	benchCmd.Flags().Int("iterations", 5, "Number of searches to run")
	return benchCmd
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	iterations, _ := cmd.Flags().GetInt("iterations")
	if iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", iterations)
	}

	initial, err := cfg.Board()
	if err != nil {
		return err
	}
	opts := solverOptions(cmd, cfg)

	out := cmd.OutOrStdout()
	times := make([]time.Duration, 0, iterations)
	var last *solver.Result
	for i := 0; i < iterations; i++ {
		result, err := solver.New(initial, opts...).Run()
		if err != nil {
			return err
		}
		if last != nil && (result.GamesPlayed != last.GamesPlayed || result.NumSolutions() != last.NumSolutions()) {
			return fmt.Errorf("run %d: %w: results differ between runs", i+1, solver.ErrInconsistentState)
		}
		last = result
		times = append(times, result.Elapsed)
		if err := report.WriteElapsed(out, result.Elapsed); err != nil {
			return err
		}
	}

	summary := report.SummaryOf(last)
	summary.Elapsed = report.TrimmedMean(times)
	fmt.Fprintf(out, "Trimmed mean of %d runs:\n", iterations)
	return report.WriteSummary(out, summary)
}
