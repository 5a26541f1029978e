package board

import (
	"errors"
	"fmt"

	"github.com/go-ricrob/pegsolver/internal/packed"
)

// ErrInvalidPosition is returned for coordinates with hole outside [1, row].
var ErrInvalidPosition = errors.New("invalid position")

// Position is a hole on the triangular board. Rows and holes count from 1;
// row r holds holes 1..r.
type Position struct {
	row, hole int
}

// NewPosition returns the position at row and hole.
func NewPosition(row, hole int) (Position, error) {
	if hole < 1 {
		return Position{}, fmt.Errorf("%w: hole %d < 1", ErrInvalidPosition, hole)
	}
	if hole > row {
		return Position{}, fmt.Errorf("%w: hole %d on row %d", ErrInvalidPosition, hole, row)
	}
	return Position{row: row, hole: hole}, nil
}

// MustPosition is like NewPosition but panics on invalid coordinates.
func MustPosition(row, hole int) Position {
	p, err := NewPosition(row, hole)
	if err != nil {
		panic(err)
	}
	return p
}

// Row returns the 1-based row.
func (p Position) Row() int { return p.row }

// Hole returns the 1-based hole within the row.
func (p Position) Hole() int { return p.hole }

func (p Position) String() string { return fmt.Sprintf("r%dh%d", p.row, p.hole) }

func (p Position) slot() int { return packed.Slot(p.row, p.hole) }

func (p Position) onBoard(rowCount int) bool { return p.row >= 1 && p.row <= rowCount }

func (p Position) jump(dr, dh int) Jump {
	return Jump{
		From: p,
		Over: MustPosition(p.row+dr, p.hole+dh),
		To:   MustPosition(p.row+2*dr, p.hole+2*dh),
	}
}

// PossibleMoves returns all jumps starting at p that stay on a board with
// rowCount rows, regardless of which holes are occupied.
// The order is up-left, up-right, left, right, down-left, down-right.
func (p Position) PossibleMoves(rowCount int) []Jump {
	moves := make([]Jump, 0, 6)

	// upward needs two rows above
	if p.row >= 3 {
		if p.hole >= 3 {
			moves = append(moves, p.jump(-1, -1))
		}
		if p.row-p.hole >= 2 {
			moves = append(moves, p.jump(-1, 0))
		}
	}

	if p.hole >= 3 {
		moves = append(moves, p.jump(0, -1))
	}
	if p.row-p.hole >= 2 {
		moves = append(moves, p.jump(0, 1))
	}

	// downward needs two rows below
	if rowCount-p.row >= 2 {
		moves = append(moves, p.jump(1, 0), p.jump(1, 1))
	}
	return moves
}
