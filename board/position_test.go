package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jump(fr, fh, or, oh, tr, th int) Jump {
	return Jump{From: MustPosition(fr, fh), Over: MustPosition(or, oh), To: MustPosition(tr, th)}
}

func TestNewPosition(t *testing.T) {
	for row := 1; row <= MaxRows; row++ {
		for hole := 1; hole <= row; hole++ {
			p, err := NewPosition(row, hole)
			require.NoError(t, err)
			assert.Equal(t, row, p.Row())
			assert.Equal(t, hole, p.Hole())
		}
		for _, hole := range []int{-1, 0, row + 1, row + 5} {
			_, err := NewPosition(row, hole)
			assert.ErrorIs(t, err, ErrInvalidPosition, "row %d hole %d", row, hole)
		}
	}

	_, err := NewPosition(0, 1)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestMustPosition(t *testing.T) {
	assert.NotPanics(t, func() { MustPosition(3, 2) })
	assert.Panics(t, func() { MustPosition(2, 3) })
	assert.Panics(t, func() { MustPosition(4, 0) })
}

func TestPositionEquality(t *testing.T) {
	assert.Equal(t, MustPosition(3, 2), MustPosition(3, 2))
	assert.NotEqual(t, MustPosition(3, 2), MustPosition(3, 1))
	assert.NotEqual(t, MustPosition(3, 2), MustPosition(2, 2))

	seen := map[Position]bool{MustPosition(4, 1): true}
	assert.True(t, seen[MustPosition(4, 1)])
	assert.Equal(t, "r3h2", MustPosition(3, 2).String())
}

func TestPossibleMoves(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		rowCount int
		expected []Jump
	}{
		{
			name:     "row1",
			pos:      MustPosition(1, 1),
			rowCount: 5,
			expected: []Jump{jump(1, 1, 2, 1, 3, 1), jump(1, 1, 2, 2, 3, 3)},
		},
		{
			name:     "row1 too short",
			pos:      MustPosition(1, 1),
			rowCount: 2,
		},
		{
			name:     "bottom left",
			pos:      MustPosition(5, 1),
			rowCount: 5,
			expected: []Jump{jump(5, 1, 4, 1, 3, 1), jump(5, 1, 5, 2, 5, 3)},
		},
		{
			name:     "bottom right",
			pos:      MustPosition(5, 5),
			rowCount: 5,
			expected: []Jump{jump(5, 5, 4, 4, 3, 3), jump(5, 5, 5, 4, 5, 3)},
		},
		{
			name:     "bottom middle",
			pos:      MustPosition(5, 3),
			rowCount: 5,
			expected: []Jump{
				jump(5, 3, 5, 4, 5, 5),
				jump(5, 3, 5, 2, 5, 1),
				jump(5, 3, 4, 2, 3, 1),
				jump(5, 3, 4, 3, 3, 3),
			},
		},
		{
			name:     "right middle",
			pos:      MustPosition(3, 3),
			rowCount: 5,
			expected: []Jump{
				jump(3, 3, 2, 2, 1, 1),
				jump(3, 3, 4, 4, 5, 5),
				jump(3, 3, 3, 2, 3, 1),
				jump(3, 3, 4, 3, 5, 3),
			},
		},
		{
			name:     "r4h4",
			pos:      MustPosition(4, 4),
			rowCount: 5,
			expected: []Jump{jump(4, 4, 4, 3, 4, 2), jump(4, 4, 3, 3, 2, 2)},
		},
		{
			name:     "center of a 7 row board",
			pos:      MustPosition(5, 3),
			rowCount: 7,
			expected: []Jump{
				jump(5, 3, 4, 2, 3, 1),
				jump(5, 3, 4, 3, 3, 3),
				jump(5, 3, 5, 2, 5, 1),
				jump(5, 3, 5, 4, 5, 5),
				jump(5, 3, 6, 3, 7, 3),
				jump(5, 3, 6, 4, 7, 5),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := tt.pos.PossibleMoves(tt.rowCount)
			assert.ElementsMatch(t, tt.expected, moves)
			for _, m := range moves {
				assert.Equal(t, tt.pos, m.From)
			}
		})
	}
}

func TestPossibleMovesStayOnBoard(t *testing.T) {
	for rowCount := 1; rowCount <= MaxRows; rowCount++ {
		for row := 1; row <= rowCount; row++ {
			for hole := 1; hole <= row; hole++ {
				for _, m := range MustPosition(row, hole).PossibleMoves(rowCount) {
					assert.LessOrEqual(t, m.Over.Row(), rowCount)
					assert.LessOrEqual(t, m.To.Row(), rowCount)
					assert.GreaterOrEqual(t, m.To.Row(), 1)
				}
			}
		}
	}
}

func TestJumpString(t *testing.T) {
	assert.Equal(t, "r5h2 -> r4h2 -> r3h2", jump(5, 2, 4, 2, 3, 2).String())
	assert.Equal(t, jump(5, 2, 4, 2, 3, 2), jump(5, 2, 4, 2, 3, 2))
}
