package repositories

import "context"

// SessionRepository records the last username that logged in on this installation.
type SessionRepository interface {
	// SaveLastUser records the username.
	SaveLastUser(ctx context.Context, username string) error

	// FindLastUser returns the recorded username, or "" when none is recorded.
	FindLastUser(ctx context.Context) (string, error)

	// ClearLastUser forgets the recorded username.
	ClearLastUser(ctx context.Context) error
}
