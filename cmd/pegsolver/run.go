package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-ricrob/pegsolver/internal/config"
	"github.com/go-ricrob/pegsolver/internal/logging"
	"github.com/go-ricrob/pegsolver/internal/metrics"
	"github.com/go-ricrob/pegsolver/internal/report"
	"github.com/go-ricrob/pegsolver/solver"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Search the whole game tree and print a summary",
		Long:  `Plays every game from the initial board and reports games played, solutions found and time elapsed.`,
		Args:  cobra.NoArgs,
		RunE:  runSearch,
	}

	addSearchFlags(runCmd)
	runCmd.Flags().Int("show-solutions", 0, "Print the first N solutions (-1 for all)")
	runCmd.Flags().Int("show-ends", 0, "Print the N most frequent end positions (-1 for all)")
	runCmd.Flags().String("color", "auto", "Color boards (auto, always, never)")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address during the run")
	runCmd.Flags().Bool("metrics-wait", false, "Keep serving metrics after the run until interrupted")
	return runCmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	showSolutions, _ := cmd.Flags().GetInt("show-solutions")
	showEnds, _ := cmd.Flags().GetInt("show-ends")
	colorMode, _ := cmd.Flags().GetString("color")
	metricsWait, _ := cmd.Flags().GetBool("metrics-wait")

	profile, err := report.ParseProfile(colorMode)
	if err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.NewWriter(cmd.ErrOrStderr(), level)

	initial, err := cfg.Board()
	if err != nil {
		return err
	}
	opts := solverOptions(cmd, cfg)

	if cfg.MetricsAddr != "" {
		collector, err := metrics.New(nil)
		if err != nil {
			return err
		}
		stop, err := serveMetrics(cfg, collector, logger)
		if err != nil {
			return err
		}
		defer stop()
		opts = append(opts, solver.WithObserver(collector))
	}

	result, err := solver.New(initial, opts...).Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := report.NewRenderer(profile)
	if showSolutions != 0 {
		if err := renderer.WriteSolutions(out, initial, result.Solutions, showSolutions); err != nil {
			return err
		}
	}
	if showEnds != 0 {
		if err := renderer.WriteEndPositions(out, result.Ends, showEnds); err != nil {
			return err
		}
	}
	if err := report.WriteSummary(out, report.SummaryOf(result)); err != nil {
		return err
	}

	if cfg.MetricsAddr != "" && metricsWait {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		logger.Info("search finished, serving metrics until interrupted", "addr", cfg.MetricsAddr)
		<-ctx.Done()
	}
	return nil
}

// serveMetrics starts the metrics endpoint and returns a function shutting it down.
func serveMetrics(cfg config.Config, collector *metrics.Collector, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", cfg.MetricsAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.MetricsAddr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
		}
	}, nil
}
