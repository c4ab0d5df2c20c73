package repositories

import (
	"context"
	"sync"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// memorySessionRepository keeps the last username for the lifetime of the process.
type memorySessionRepository struct {
	mu       sync.RWMutex
	lastUser string
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{}
}

var _ portsrepo.SessionRepository = (*memorySessionRepository)(nil)

func (r *memorySessionRepository) SaveLastUser(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastUser = username
	return nil
}

func (r *memorySessionRepository) FindLastUser(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastUser, nil
}

func (r *memorySessionRepository) ClearLastUser(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastUser = ""
	return nil
}
