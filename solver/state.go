package solver

import (
	"cmp"
	"errors"
	"time"

	"github.com/go-ricrob/pegsolver/board"
	"github.com/go-ricrob/pegsolver/internal/packed"
	"github.com/go-ricrob/pegsolver/internal/partmap"
	"golang.org/x/exp/slices"
)

var (
	// ErrInconsistentState reports a move the search generated but could not apply.
	ErrInconsistentState = errors.New("inconsistent state")
	// ErrDepthExceeded reports a path longer than the configured maximum depth.
	ErrDepthExceeded = errors.New("search depth exceeded")
)

// EndPosition is a distinct terminal board and the number of games ending on it.
type EndPosition struct {
	Board board.Board
	Games int64
}

// Result is the outcome of a full search.
type Result struct {
	// GamesPlayed counts terminal boards: wins and dead ends.
	GamesPlayed int64
	// DeadEnds counts terminal boards with no legal move and more than one peg.
	DeadEnds int64
	// Solutions holds every winning move sequence in discovery order.
	Solutions [][]board.Jump
	// EndPositions is the number of distinct terminal boards.
	EndPositions int
	// Ends lists the distinct terminal boards, most frequent first. Ties are
	// ordered by board key.
	Ends []EndPosition
	// MaxDepth is the longest move sequence played.
	MaxDepth int
	Elapsed  time.Duration
}

// NumSolutions returns the number of winning sequences found.
func (r *Result) NumSolutions() int { return len(r.Solutions) }

// states accumulates the terminal boards of one subtree. Only ends is shared
// between subtrees.
type states struct {
	gamesPlayed int64
	deadEnds    int64
	solutions   [][]board.Jump
	maxDepth    int
	ends        *partmap.Map[packed.Pegs]
	observer    Observer
}

func newStates(ends *partmap.Map[packed.Pegs], observer Observer) *states {
	return &states{ends: ends, observer: observer}
}

func (s *states) visit(depth int) {
	if depth > s.maxDepth {
		s.maxDepth = depth
	}
}

func (s *states) terminal(b board.Board, path []board.Jump) {
	s.gamesPlayed++
	pegs := b.PegsRemaining()
	win := pegs == 1
	if win {
		s.solutions = append(s.solutions, slices.Clone(path))
	} else {
		s.deadEnds++
	}
	s.ends.Add(b.Key(), 1)
	if s.observer != nil {
		s.observer.Terminal(pegs, win)
	}
}

// merge appends the results of o to s; o must describe a subtree explored after s.
func (s *states) merge(o *states) {
	s.gamesPlayed += o.gamesPlayed
	s.deadEnds += o.deadEnds
	s.solutions = append(s.solutions, o.solutions...)
	s.visit(o.maxDepth)
}

func (s *states) result(rowCount int, elapsed time.Duration) *Result {
	ends := make([]EndPosition, 0, s.ends.Size())
	s.ends.Range(func(k packed.Pegs, n int) bool {
		b, err := board.FromKey(rowCount, k)
		if err != nil {
			panic(err) // should never happen: keys come from boards of this size
		}
		ends = append(ends, EndPosition{Board: b, Games: int64(n)})
		return true
	})
	slices.SortFunc(ends, func(a, b EndPosition) int {
		if a.Games != b.Games {
			return cmp.Compare(b.Games, a.Games)
		}
		return cmp.Compare(a.Board.Key(), b.Board.Key())
	})

	return &Result{
		GamesPlayed:  s.gamesPlayed,
		DeadEnds:     s.deadEnds,
		Solutions:    s.solutions,
		EndPositions: len(ends),
		Ends:         ends,
		MaxDepth:     s.maxDepth,
		Elapsed:      elapsed,
	}
}
