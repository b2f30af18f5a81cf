package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/hint"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New("alice", 5, []string{"hello", "early", "asset", "bound"})
	require.NoError(t, err)
	return s
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	b, err := OpenBadger(BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"badger": b,
	}
}

func TestStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := newSession(t)
			_, err := s.ApplyGuess("bound", []hint.Hint{
				hint.New('b', hint.None()),
				hint.New('o', hint.NotAt(1)),
			})
			require.NoError(t, err)
			require.NoError(t, st.Save(ctx, s))

			got, err := st.Get(ctx, s.ID)
			require.NoError(t, err)
			assert.Equal(t, s.ID, got.ID)
			assert.Equal(t, s.Owner, got.Owner)
			assert.Equal(t, s.Pool, got.Pool)
			require.Len(t, got.Guesses, 1)
			assert.Equal(t, s.Guesses[0].Hints, got.Guesses[0].Hints)
			assert.True(t, s.CreatedAt.Equal(got.CreatedAt))

			require.NoError(t, st.Delete(ctx, s.ID))
			_, err = st.Get(ctx, s.ID)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.ErrorIs(t, st.Delete(ctx, s.ID), ErrNotFound)
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Get(context.Background(), "nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := newSession(t)
			require.NoError(t, st.Save(ctx, s))

			s.Pool[0] = "mutated"
			got, err := st.Get(ctx, s.ID)
			require.NoError(t, err)
			assert.Equal(t, "hello", got.Pool[0])

			got.Pool = nil
			again, err := st.Get(ctx, s.ID)
			require.NoError(t, err)
			assert.Len(t, again.Pool, 4)
		})
	}
}

func TestBadger_Persists(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "sessions")

	st, err := OpenBadger(BadgerConfig{Path: dir})
	require.NoError(t, err)
	s := newSession(t)
	require.NoError(t, st.Save(ctx, s))
	require.NoError(t, st.Close())

	st, err = OpenBadger(BadgerConfig{Path: dir})
	require.NoError(t, err)
	defer st.Close()

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Pool, got.Pool)
}

func TestOpenBadger_RequiresPath(t *testing.T) {
	_, err := OpenBadger(BadgerConfig{})
	assert.Error(t, err)
}
