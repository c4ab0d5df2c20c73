package localstore

import (
	"context"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// sessionRepository keeps the last username as a plain string under lastUserKey.
type sessionRepository struct {
	store *Store
}

var _ portsrepo.SessionRepository = (*sessionRepository)(nil)

func (r *sessionRepository) SaveLastUser(ctx context.Context, username string) error {
	return r.store.Set(ctx, lastUserKey, username)
}

func (r *sessionRepository) FindLastUser(ctx context.Context) (string, error) {
	value, _, err := r.store.Get(ctx, lastUserKey)
	return value, err
}

func (r *sessionRepository) ClearLastUser(ctx context.Context) error {
	return r.store.Remove(ctx, lastUserKey)
}
