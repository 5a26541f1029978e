package board

import "fmt"

// Jump moves the peg at From over the peg at Over into the hole To.
// A Jump says nothing about legality; Board.Apply checks it.
type Jump struct {
	From, Over, To Position
}

func (j Jump) String() string { return fmt.Sprintf("%v -> %v -> %v", j.From, j.Over, j.To) }
