// Package solver implements an exhaustive depth-first search over peg
// solitaire boards.
//
// Every legal move is tried from every reachable board; there is no
// memoization, so a board reached by different move sequences is explored
// once per sequence. Terminal boards are counted as games played and those
// with a single peg left are recorded as solutions.
package solver

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-ricrob/pegsolver/board"
	"github.com/go-ricrob/pegsolver/internal/logging"
	"github.com/go-ricrob/pegsolver/internal/packed"
	"github.com/go-ricrob/pegsolver/internal/partmap"
	"golang.org/x/sync/errgroup"
)

var numPart = 4 * runtime.NumCPU()

// Runner runs a search.
type Runner interface {
	Run() (*Result, error)
}

var _ Runner = (*Solver)(nil)

// Observer receives search events. With more than one worker the methods are
// called concurrently.
type Observer interface {
	// Terminal is called for every terminal board with the pegs left on it.
	Terminal(pegs int, win bool)
	// Finished is called once after a successful search.
	Finished(r *Result)
}

// Option configures a Solver.
type Option func(*Solver)

// WithStrategy selects the walk strategy.
func WithStrategy(strategy Strategy) Option { return func(s *Solver) { s.strategy = strategy } }

// WithWorkers explores the subtrees of the first moves on up to n goroutines.
// Values below 2 search sequentially.
func WithWorkers(n int) Option { return func(s *Solver) { s.workers = n } }

// WithMaxDepth fails the search with ErrDepthExceeded if a move sequence
// would grow beyond n moves. Zero means unbounded.
func WithMaxDepth(n int) Option { return func(s *Solver) { s.maxDepth = n } }

// WithObserver installs an observer.
func WithObserver(o Observer) Option { return func(s *Solver) { s.observer = o } }

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *slog.Logger) Option { return func(s *Solver) { s.logger = logger } }

// Solver searches the complete game tree below an initial board.
type Solver struct {
	initial  board.Board
	strategy Strategy
	workers  int
	maxDepth int
	observer Observer
	logger   *slog.Logger
}

// New returns a solver starting at initial.
func New(initial board.Board, opts ...Option) *Solver {
	s := &Solver{
		initial:  initial,
		strategy: StrategyRecursive,
		workers:  1,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Solver) walk(states *states, b board.Board, path []board.Jump) error {
	w := &walker{states: states, path: path, maxDepth: s.maxDepth}
	switch s.strategy {
	case StrategyStack:
		return w.iterate(b)
	default:
		return w.recurse(b)
	}
}

// fanOut explores the subtree of each first move in its own goroutine. Every
// branch owns its states; they are merged in first-move order so the result
// equals the sequential one.
func (s *Solver) fanOut(ends *partmap.Map[packed.Pegs]) (*states, error) {
	root := newStates(ends, s.observer)
	rootWalker := &walker{states: root, maxDepth: s.maxDepth}
	moves := rootWalker.expand(s.initial)

	branches := make([]*states, len(moves))
	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for i, m := range moves {
		branches[i] = newStates(ends, s.observer)
		g.Go(func() error {
			w := &walker{states: branches[i], maxDepth: s.maxDepth}
			next, err := w.step(s.initial, m)
			if err != nil {
				return err
			}
			s.logger.Debug("branch started", "branch", i, "move", m)
			if err := s.walk(branches[i], next, w.path); err != nil {
				return fmt.Errorf("branch %d (%v): %w", i, m, err)
			}
			s.logger.Debug("branch finished", "branch", i, "games", branches[i].gamesPlayed, "solutions", len(branches[i].solutions))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, branch := range branches {
		root.merge(branch)
	}
	return root, nil
}

// Run searches the whole tree. A move that cannot be applied to the board it
// was generated from aborts the search with ErrInconsistentState.
func (s *Solver) Run() (*Result, error) {
	start := time.Now()
	ends := partmap.New[packed.Pegs](numPart)

	s.logger.Info("search started",
		"rows", s.initial.RowCount(),
		"pegs", s.initial.PegsRemaining(),
		"strategy", s.strategy,
		"workers", s.workers,
	)

	var states *states
	var err error
	if s.workers > 1 {
		states, err = s.fanOut(ends)
	} else {
		states = newStates(ends, s.observer)
		err = s.walk(states, s.initial, nil)
	}
	if err != nil {
		s.logger.Error("search failed", "error", err)
		return nil, err
	}

	result := states.result(s.initial.RowCount(), time.Since(start))
	s.logger.Info("search finished",
		"games", result.GamesPlayed,
		"solutions", result.NumSolutions(),
		"dead_ends", result.DeadEnds,
		"end_positions", result.EndPositions,
		"elapsed", result.Elapsed,
	)
	if len(result.Ends) > 0 {
		top := result.Ends[0]
		s.logger.Debug("most frequent end position",
			"pegs", top.Board.PegsRemaining(),
			"games", top.Games,
			"key", fmt.Sprintf("%#x", uint64(top.Board.Key())),
		)
	}
	if s.observer != nil {
		s.observer.Finished(result)
	}
	return result, nil
}
