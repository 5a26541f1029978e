// Package spinlock provides a spinlock mutex for short critical sections.
package spinlock

import (
	"runtime"
	"sync"
	"sync/atomic"
)

var _ sync.Locker = (*Mutex)(nil)

// Mutex represents a spinlock. The zero value is unlocked.
type Mutex struct {
	locked atomic.Bool
}

// Lock locks the mutex busy waiting, yielding the processor between attempts.
func (m *Mutex) Lock() {
	for !m.TryLock() {
		runtime.Gosched()
	}
}

// TryLock locks the mutex if it is free and reports whether it did.
func (m *Mutex) TryLock() bool { return m.locked.CompareAndSwap(false, true) }

// Unlock unlocks the mutex.
func (m *Mutex) Unlock() { m.locked.Store(false) }
