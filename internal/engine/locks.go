// internal/engine/locks.go
package engine

import (
	"sync"

	"github.com/google/uuid"
)

// gameLocks serializes mutating operations per game id. Two concurrent
// operations against different games proceed in parallel; operations against
// the same game queue up, so the read-modify-write sequences over the pool,
// hands and discard pile never interleave.
type gameLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newGameLocks() *gameLocks {
	return &gameLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// lock acquires the mutex for gameID and returns its release function.
// Lock entries are never removed; a finished game stops receiving calls and
// its entry costs one mutex.
func (l *gameLocks) lock(gameID uuid.UUID) func() {
	l.mu.Lock()
	m, ok := l.locks[gameID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[gameID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
