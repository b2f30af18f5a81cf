// internal/store/badger.go
//
// BadgerDB-backed Store for sessions that survive restarts.
// Keys are "session/<id>", values are the JSON-encoded session.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

const keyPrefix = "session/"

// BadgerConfig configures OpenBadger.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in RAM; used by tests.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool
}

type badgerStore struct {
	db *badger.DB
}

// badgerLogger routes Badger's own logging through zerolog.
type badgerLogger struct {
	l zerolog.Logger
}

func (b badgerLogger) Errorf(format string, args ...any)   { b.l.Error().Msgf(format, args...) }
func (b badgerLogger) Warningf(format string, args ...any) { b.l.Warn().Msgf(format, args...) }
func (b badgerLogger) Infof(format string, args ...any)    { b.l.Debug().Msgf(format, args...) }
func (b badgerLogger) Debugf(format string, args ...any)   { b.l.Trace().Msgf(format, args...) }

// OpenBadger opens (or creates) a Badger-backed Store.
func OpenBadger(cfg BadgerConfig) (Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger path is required")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create badger directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.
		WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(badgerLogger{l: log.With().Str("component", "badger").Logger()})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &badgerStore{db: db}, nil
}

func sessionKey(id string) []byte { return []byte(keyPrefix + id) }

func (b *badgerStore) Save(ctx context.Context, s *session.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(s.ID), data)
	})
}

func (b *badgerStore) Get(ctx context.Context, id string) (*session.Session, error) {
	var s session.Session
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &s)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	return &s, nil
}

func (b *badgerStore) Delete(ctx context.Context, id string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(sessionKey(id)); err != nil {
			return err
		}
		return txn.Delete(sessionKey(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	return err
}

func (b *badgerStore) Close() error { return b.db.Close() }
