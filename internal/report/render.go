package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-ricrob/pegsolver/board"
	"github.com/go-ricrob/pegsolver/solver"
	"github.com/muesli/termenv"
)

// ParseProfile maps a color mode (auto, always, never) to a terminal profile.
func ParseProfile(mode string) (termenv.Profile, error) {
	switch strings.ToLower(mode) {
	case "", "auto":
		return termenv.EnvColorProfile(), nil
	case "always":
		return termenv.ANSI256, nil
	case "never":
		return termenv.Ascii, nil
	default:
		return termenv.Ascii, fmt.Errorf("unknown color mode: %q", mode)
	}
}

// Renderer draws boards and solutions for a terminal profile.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer returns a renderer for profile.
func NewRenderer(profile termenv.Profile) *Renderer {
	return &Renderer{profile: profile}
}

func (r *Renderer) style(s, color string) string {
	return termenv.String(s).Foreground(r.profile.Color(color)).String()
}

// Board draws b like board.Board.String with pegs and holes colored.
func (r *Renderer) Board(b board.Board) string {
	var sb strings.Builder
	b.Format(&sb, r.style(" *", "#f59e0b"), r.style(" O", "#6b7280"))
	return sb.String()
}

// WriteSolutions prints the first limit solutions move by move followed by
// the final board. A limit below zero prints all of them.
func (r *Renderer) WriteSolutions(w io.Writer, initial board.Board, solutions [][]board.Jump, limit int) error {
	if limit < 0 || limit > len(solutions) {
		limit = len(solutions)
	}
	for i, solution := range solutions[:limit] {
		fmt.Fprintln(w, r.style(fmt.Sprintf("Solution %d:", i+1), "#818cf8"))
		for j, m := range solution {
			fmt.Fprintf(w, "  %2d. %v\n", j+1, m)
		}
		end, err := board.Replay(initial, solution)
		if err != nil {
			return fmt.Errorf("solution %d: %w", i+1, err)
		}
		if _, err := io.WriteString(w, r.Board(end)); err != nil {
			return err
		}
	}
	return nil
}

// WriteEndPositions prints the first limit terminal boards of ends with the
// number of games ending on each. A limit below zero prints all of them.
func (r *Renderer) WriteEndPositions(w io.Writer, ends []solver.EndPosition, limit int) error {
	if limit < 0 || limit > len(ends) {
		limit = len(ends)
	}
	for i, end := range ends[:limit] {
		header := fmt.Sprintf("End position %d: %d games, %d pegs left", i+1, end.Games, end.Board.PegsRemaining())
		if _, err := fmt.Fprintln(w, r.style(header, "#818cf8")); err != nil {
			return err
		}
		if _, err := io.WriteString(w, r.Board(end.Board)); err != nil {
			return err
		}
	}
	return nil
}
