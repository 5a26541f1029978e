// Package report prints search results to the console.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-ricrob/pegsolver/solver"
	"golang.org/x/exp/slices"
)

// Summary is the part of a result printed after every run.
type Summary struct {
	GamesPlayed int64
	Solutions   int
	Elapsed     time.Duration
}

// SummaryOf extracts the summary of r.
func SummaryOf(r *solver.Result) Summary {
	return Summary{GamesPlayed: r.GamesPlayed, Solutions: r.NumSolutions(), Elapsed: r.Elapsed}
}

// WriteSummary prints s as three right-aligned lines.
func WriteSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "Games played:    %6d\n", s.GamesPlayed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Solutions found: %6d\n", s.Solutions); err != nil {
		return err
	}
	return WriteElapsed(w, s.Elapsed)
}

// WriteElapsed prints the elapsed time line in milliseconds.
func WriteElapsed(w io.Writer, d time.Duration) error {
	_, err := fmt.Fprintf(w, "Time elapsed:    %6dms\n", d.Milliseconds())
	return err
}

// TrimmedMean drops the fastest and the slowest run and returns the mean of
// the rest rounded up to the millisecond. With fewer than three runs nothing
// is dropped.
func TrimmedMean(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	sorted := slices.Clone(times)
	slices.Sort(sorted)
	if len(sorted) > 2 {
		sorted = sorted[1 : len(sorted)-1]
	}

	var sum int64
	for _, d := range sorted {
		sum += d.Milliseconds()
	}
	n := int64(len(sorted))
	return time.Duration((sum+n-1)/n) * time.Millisecond
}
