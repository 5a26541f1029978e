package solver

import (
	"fmt"

	"github.com/go-ricrob/pegsolver/board"
)

// walker explores one subtree depth first. path is the move sequence leading
// to the board being explored; it is restored on every unwind.
type walker struct {
	states   *states
	path     []board.Jump
	maxDepth int // 0: unbounded
}

// expand records terminal boards and returns the moves to explore from b.
// A nil result means b is terminal.
func (w *walker) expand(b board.Board) []board.Jump {
	w.states.visit(len(w.path))
	if b.PegsRemaining() == 1 {
		w.states.terminal(b, w.path)
		return nil
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		w.states.terminal(b, w.path)
	}
	return moves
}

func (w *walker) step(b board.Board, m board.Jump) (board.Board, error) {
	next, err := b.Apply(m)
	if err != nil {
		return board.Board{}, fmt.Errorf("%w: %w", ErrInconsistentState, err)
	}
	if w.maxDepth > 0 && len(w.path) >= w.maxDepth {
		return board.Board{}, fmt.Errorf("%w: more than %d moves", ErrDepthExceeded, w.maxDepth)
	}
	w.path = append(w.path, m)
	return next, nil
}

func (w *walker) recurse(b board.Board) error {
	for _, m := range w.expand(b) {
		next, err := w.step(b, m)
		if err != nil {
			return err
		}
		err = w.recurse(next)
		w.path = w.path[:len(w.path)-1]
		if err != nil {
			return err
		}
	}
	return nil
}

type frame struct {
	board board.Board
	moves []board.Jump
	next  int
}

// iterate is recurse with the call stack replaced by frames. While frame k is
// on top, len(path) == base+k.
func (w *walker) iterate(root board.Board) error {
	base := len(w.path)

	var stack []frame
	if moves := w.expand(root); len(moves) > 0 {
		stack = append(stack, frame{board: root, moves: moves})
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.moves) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				w.path = w.path[:base+len(stack)-1]
			}
			continue
		}

		m := top.moves[top.next]
		top.next++
		next, err := w.step(top.board, m)
		if err != nil {
			return err
		}
		if moves := w.expand(next); len(moves) > 0 {
			stack = append(stack, frame{board: next, moves: moves})
		} else {
			w.path = w.path[:len(w.path)-1]
		}
	}
	return nil
}
