// Package board implements the triangular peg solitaire board: hole
// coordinates, candidate jumps and immutable board states.
//
// The board is an equilateral triangle; row r holds r holes:
//
//	Row
//	  1     *
//	  2    * *
//	  3   * * *
//	  4  * * * *
//	  5 * * * * *
//
// A Board value is never modified. Applying a jump returns a new Board, so
// boards derived from the same parent never observe each other.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ricrob/pegsolver/internal/packed"
)

// MaxRows is the largest supported board; all holes must fit a packed.Pegs.
const MaxRows = 10

var (
	// ErrInvalidBoard is returned for unsupported sizes or empty holes off the board.
	ErrInvalidBoard = errors.New("invalid board")
	// ErrInconsistentMove is returned when a jump does not match the board occupancy.
	ErrInconsistentMove = errors.New("move is not consistent with board")
)

// Board is a snapshot of the occupied holes of a board with a fixed number of rows.
type Board struct {
	rowCount int
	pegs     packed.Pegs
}

// New returns a board with rowCount rows where every hole except empty holds a peg.
func New(rowCount int, empty Position) (Board, error) {
	if rowCount < 1 || rowCount > MaxRows {
		return Board{}, fmt.Errorf("%w: %d rows not in [1, %d]", ErrInvalidBoard, rowCount, MaxRows)
	}
	if !empty.onBoard(rowCount) {
		return Board{}, fmt.Errorf("%w: empty hole %v not on a %d row board", ErrInvalidBoard, empty, rowCount)
	}
	return Board{
		rowCount: rowCount,
		pegs:     packed.Full(packed.Slots(rowCount)).Clear(empty.slot()),
	}, nil
}

// FromKey returns the board with rowCount rows whose occupancy is pegs, the
// inverse of Key.
func FromKey(rowCount int, pegs packed.Pegs) (Board, error) {
	if rowCount < 1 || rowCount > MaxRows {
		return Board{}, fmt.Errorf("%w: %d rows not in [1, %d]", ErrInvalidBoard, rowCount, MaxRows)
	}
	if pegs&^packed.Full(packed.Slots(rowCount)) != 0 {
		return Board{}, fmt.Errorf("%w: pegs %#x outside a %d row board", ErrInvalidBoard, uint64(pegs), rowCount)
	}
	return Board{rowCount: rowCount, pegs: pegs}, nil
}

// RowCount returns the number of rows.
func (b Board) RowCount() int { return b.rowCount }

// Key returns the packed occupancy of b. Boards of equal size are equal iff their keys are.
func (b Board) Key() packed.Pegs { return b.pegs }

// Contains reports whether p is a hole of b.
func (b Board) Contains(p Position) bool { return p.onBoard(b.rowCount) }

// Occupied reports whether p holds a peg. Holes off the board are never occupied.
func (b Board) Occupied(p Position) bool { return b.Contains(p) && b.pegs.Has(p.slot()) }

// PegsRemaining returns the number of pegs on the board.
func (b Board) PegsRemaining() int { return b.pegs.Count() }

// Pegs returns the occupied positions in row-major order.
func (b Board) Pegs() []Position {
	pegs := make([]Position, 0, b.pegs.Count())
	for row := 1; row <= b.rowCount; row++ {
		for hole := 1; hole <= row; hole++ {
			if p := (Position{row: row, hole: hole}); b.pegs.Has(p.slot()) {
				pegs = append(pegs, p)
			}
		}
	}
	return pegs
}

// LegalMoves returns every jump that may be applied to b: it starts on a peg,
// passes over a peg and lands in an empty hole. Moves are ordered by the
// row-major order of their From hole and then by PossibleMoves order.
func (b Board) LegalMoves() []Jump {
	var moves []Jump
	for _, p := range b.Pegs() {
		for _, m := range p.PossibleMoves(b.rowCount) {
			if b.pegs.Has(m.Over.slot()) && !b.pegs.Has(m.To.slot()) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// Apply returns the board after j. b is left unchanged.
func (b Board) Apply(j Jump) (Board, error) {
	switch {
	case !b.Occupied(j.From):
		return Board{}, fmt.Errorf("%w: 'from' hole %v was unoccupied", ErrInconsistentMove, j.From)
	case !b.Occupied(j.Over):
		return Board{}, fmt.Errorf("%w: jumped hole %v was unoccupied", ErrInconsistentMove, j.Over)
	case b.Occupied(j.To):
		return Board{}, fmt.Errorf("%w: 'to' hole %v was occupied", ErrInconsistentMove, j.To)
	case !b.Contains(j.To):
		return Board{}, fmt.Errorf("%w: 'to' hole %v does not exist", ErrInconsistentMove, j.To)
	}
	return Board{
		rowCount: b.rowCount,
		pegs:     b.pegs.Clear(j.From.slot()).Clear(j.Over.slot()).Set(j.To.slot()),
	}, nil
}

// Replay applies moves in order and returns the final board. On failure the
// error names the index of the offending move.
func Replay(b Board, moves []Jump) (Board, error) {
	for i, m := range moves {
		next, err := b.Apply(m)
		if err != nil {
			return b, fmt.Errorf("move %d (%v): %w", i, m, err)
		}
		b = next
	}
	return b, nil
}

// Format writes b with one line per row; each row is indented by rowCount-row
// blanks and each hole is rendered by peg or empty.
func (b Board) Format(sb *strings.Builder, peg, empty string) {
	for row := 1; row <= b.rowCount; row++ {
		sb.WriteString(strings.Repeat(" ", b.rowCount-row))
		for hole := 1; hole <= row; hole++ {
			if b.pegs.Has(packed.Slot(row, hole)) {
				sb.WriteString(peg)
			} else {
				sb.WriteString(empty)
			}
		}
		sb.WriteByte('\n')
	}
}

// String renders the board in the shape of the real one; '*' marks a peg and
// 'O' an empty hole.
func (b Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Game with %d pegs:\n", b.PegsRemaining())
	b.Format(&sb, " *", " O")
	return sb.String()
}
