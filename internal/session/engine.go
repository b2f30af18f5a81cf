// internal/session/engine.go
//
// Session lifecycle on top of the constraint engine.
// Responsibilities:
//   - Create sessions from a dictionary's words for a given width.
//   - Apply a reported guess through solver.Simple and snapshot the pool.
//   - Page through the current suggestions.
//
// A session stores the pool itself rather than hint history; rebuilding the
// engine from the pool is exact because the engine keeps no other state.

package session

import (
	"slices"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-solver/internal/hint"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var now = time.Now

// New constructs a session seeded with words of exactly width letters.
func New(owner string, width int, words []string) (*Session, error) {
	engine, err := solver.New(width, words)
	if err != nil {
		return nil, err
	}
	t := now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Owner:     owner,
		Width:     width,
		Pool:      slices.Clone(engine.Suggest()),
		Guesses:   []Guess{},
		CreatedAt: t,
		UpdatedAt: t,
	}, nil
}

// Engine rebuilds the constraint engine over the current pool.
func (s *Session) Engine() (*solver.Simple, error) {
	return solver.New(s.Width, s.Pool)
}

// ApplyGuess narrows the pool with a guess and its hints and records it.
// Returns the number of remaining candidates. On error the session is
// unchanged.
func (s *Session) ApplyGuess(word string, hints []hint.Hint) (int, error) {
	engine, err := s.Engine()
	if err != nil {
		return 0, err
	}
	if err := engine.AddHint(word, hints); err != nil {
		return 0, err
	}

	s.Pool = slices.Clone(engine.Suggest())
	if utf8.RuneCountInString(word) == s.Width && hint.Solves(word, hints) {
		s.Solution = word
	}
	t := now().UTC()
	s.Guesses = append(s.Guesses, Guess{
		Word:      word,
		Hints:     slices.Clone(hints),
		Remaining: len(s.Pool),
		At:        t,
	})
	s.UpdatedAt = t
	return len(s.Pool), nil
}

// Remaining reports the pool size.
func (s *Session) Remaining() int { return len(s.Pool) }

// Suggestions returns up to limit candidates (all of them when limit <= 0).
func (s *Session) Suggestions(limit int) []string {
	if limit <= 0 || limit >= len(s.Pool) {
		return slices.Clone(s.Pool)
	}
	return slices.Clone(s.Pool[:limit])
}

// Solved reports whether the answer is known: a guess was reported all
// green, or exactly one candidate is left.
func (s *Session) Solved() bool { return s.Solution != "" || len(s.Pool) == 1 }

// Answer returns the solved word, or "" while unsolved.
func (s *Session) Answer() string {
	switch {
	case s.Solution != "":
		return s.Solution
	case len(s.Pool) == 1:
		return s.Pool[0]
	}
	return ""
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	c := *s
	c.Pool = slices.Clone(s.Pool)
	c.Guesses = make([]Guess, len(s.Guesses))
	for i, g := range s.Guesses {
		g.Hints = slices.Clone(g.Hints)
		c.Guesses[i] = g
	}
	return &c
}
