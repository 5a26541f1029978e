// Package partmap provides a partitioned counting map safe for concurrent use.
package partmap

import (
	"hash/maphash"

	"github.com/go-ricrob/pegsolver/internal/packed"
	"github.com/go-ricrob/pegsolver/internal/spinlock"
)

type part[K packed.Hashable] struct {
	mu spinlock.Mutex
	m  map[K]int
}

// Map counts occurrences of keys. Keys are spread over partitions by hash so
// that concurrent writers rarely contend on the same lock.
type Map[K packed.Hashable] struct {
	numPart uint64
	seed    maphash.Seed
	parts   []*part[K]
}

// New returns a map with numPart partitions (at least one).
func New[K packed.Hashable](numPart int) *Map[K] {
	if numPart < 1 {
		numPart = 1
	}
	pm := &Map[K]{
		numPart: uint64(numPart),
		seed:    maphash.MakeSeed(),
		parts:   make([]*part[K], numPart),
	}
	for i := range pm.parts {
		pm.parts[i] = &part[K]{m: make(map[K]int)}
	}
	return pm
}

func (pm *Map[K]) part(k K) *part[K] { return pm.parts[k.Hash(pm.seed)%pm.numPart] }

// Add adds n to the count of k and reports whether k was new.
func (pm *Map[K]) Add(k K, n int) bool {
	part := pm.part(k)
	part.mu.Lock()
	v, ok := part.m[k]
	part.m[k] = v + n
	part.mu.Unlock()
	return !ok
}

// Size returns the number of distinct keys.
func (pm *Map[K]) Size() int {
	size := 0
	for _, part := range pm.parts {
		part.mu.Lock()
		size += len(part.m)
		part.mu.Unlock()
	}
	return size
}

// Range calls fn for every key and its count until fn returns false.
// fn must not call back into the map.
func (pm *Map[K]) Range(fn func(k K, n int) bool) {
	for _, part := range pm.parts {
		part.mu.Lock()
		for k, v := range part.m {
			if !fn(k, v) {
				part.mu.Unlock()
				return
			}
		}
		part.mu.Unlock()
	}
}
