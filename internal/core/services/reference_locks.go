package services

import "sync"

// ReferenceLocks serializes, per user, the writes that create references to
// categories with the deletes that check those references.
// Holding it across check and write only covers one process.
type ReferenceLocks struct {
	mu    sync.Mutex
	users map[string]*sync.Mutex
}

// NewReferenceLocks creates an empty lock set.
func NewReferenceLocks() *ReferenceLocks {
	return &ReferenceLocks{users: make(map[string]*sync.Mutex)}
}

// Lock blocks until the user's lock is held and returns its release func.
func (l *ReferenceLocks) Lock(userID string) func() {
	l.mu.Lock()
	m, ok := l.users[userID]
	if !ok {
		m = &sync.Mutex{}
		l.users[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
