// Package metrics exports search statistics as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/go-ricrob/pegsolver/solver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pegsolver"

var _ solver.Observer = (*Collector)(nil)

// Collector records solver events.
type Collector struct {
	terminalStates *prometheus.CounterVec
	terminalPegs   prometheus.Histogram
	solutions      prometheus.Gauge
	runDuration    prometheus.Histogram

	// resolved once; WithLabelValues is too slow for every terminal board
	wins, deadEnds prometheus.Counter

	gatherer prometheus.Gatherer
}

// New creates a collector and registers it on reg. If reg is nil a private
// registry is used.
func New(reg *prometheus.Registry) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	c := &Collector{
		terminalStates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "terminal_states_total",
				Help:      "Total number of terminal boards visited",
			},
			[]string{"outcome"},
		),
		terminalPegs: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "terminal_pegs",
				Help:      "Pegs left on terminal boards",
				Buckets:   prometheus.LinearBuckets(1, 1, 10),
			},
		),
		solutions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_solutions",
				Help:      "Number of solutions found by the last completed search",
			},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of completed searches",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
			},
		),
		gatherer: reg,
	}
	c.wins = c.terminalStates.WithLabelValues("win")
	c.deadEnds = c.terminalStates.WithLabelValues("dead_end")

	for _, collector := range []prometheus.Collector{c.terminalStates, c.terminalPegs, c.solutions, c.runDuration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Terminal implements solver.Observer.
func (c *Collector) Terminal(pegs int, win bool) {
	if win {
		c.wins.Inc()
	} else {
		c.deadEnds.Inc()
	}
	c.terminalPegs.Observe(float64(pegs))
}

// Finished implements solver.Observer.
func (c *Collector) Finished(r *solver.Result) {
	c.solutions.Set(float64(r.NumSolutions()))
	c.runDuration.Observe(r.Elapsed.Seconds())
}

// Handler serves the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
