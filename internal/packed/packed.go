// Package packed provides a memory efficient representation of peg occupancy.
package packed

import (
	"encoding/binary"
	"hash/maphash"
	"math/bits"
)

// MaxSlots is the number of holes a Pegs value can address.
const MaxSlots = 64

// Hashable interface defines key types usable in a partitioned map.
type Hashable interface {
	comparable
	Hash(seed maphash.Seed) uint64
}

var _ interface{ Hash(maphash.Seed) uint64 } = Pegs(0)

// Pegs is a set of occupied holes, one bit per row-major slot.
type Pegs uint64

// Slot returns the row-major slot of a 1-based row and hole.
func Slot(row, hole int) int { return (row-1)*row/2 + hole - 1 }

// Slots returns the number of holes on a board with rowCount rows.
func Slots(rowCount int) int { return rowCount * (rowCount + 1) / 2 }

// Full returns a set with the first n slots occupied.
func Full(n int) Pegs {
	if n >= MaxSlots {
		return ^Pegs(0)
	}
	return Pegs(1)<<uint(n) - 1
}

// Has reports whether slot i is occupied.
func (p Pegs) Has(i int) bool { return p&(1<<uint(i)) != 0 }

// Set returns p with slot i occupied.
func (p Pegs) Set(i int) Pegs { return p | 1<<uint(i) }

// Clear returns p with slot i empty.
func (p Pegs) Clear(i int) Pegs { return p &^ (1 << uint(i)) }

// Count returns the number of occupied slots.
func (p Pegs) Count() int { return bits.OnesCount64(uint64(p)) }

// Hash returns a hash value of p.
func (p Pegs) Hash(seed maphash.Seed) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(p))
	return maphash.Bytes(seed, b[:])
}
