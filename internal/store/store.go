// internal/store/store.go
//
// Persistence contract for solving sessions.
// Two implementations live in this package:
//   - memory: map + RWMutex, lost on restart.
//   - Badger: embedded key/value store, JSON-encoded sessions.
//
// Both hand out copies, so callers may mutate what Get returns and must
// call Save for the change to stick.

package store

import (
	"context"
	"errors"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

// ErrNotFound is returned when no session has the requested ID.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *session.Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Delete removes a session. Deleting a missing ID returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases any underlying resources.
	Close() error
}
