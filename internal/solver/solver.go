// internal/solver/solver.go
//
// Constraint engine for a single puzzle.
// Responsibilities:
//   - Hold the live candidate pool (all words share one width).
//   - Remove a guessed word and narrow the pool with the hints it produced.
//   - Expose the remaining candidates and their count.
//
// Notes:
//   - The engine does no I/O and keeps no hint history: the effect of every
//     batch is baked into the pool, which only ever shrinks.
//   - Word length and positions are measured in runes.
//   - Hint preconditions (letters, 0 <= position < width) are checked before
//     anything is mutated; a violation returns ErrPrecondition.

package solver

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-solver/internal/hint"
)

var (
	ErrInvalidWidth = errors.New("solver: width must be positive")
	ErrPrecondition = errors.New("solver: hint precondition violated")
)

// CandidateFilter is the capability set of a constraint engine.
type CandidateFilter interface {
	// AddHint removes word from the candidates and applies hints.
	AddHint(word string, hints []hint.Hint) error

	// Suggest returns the current candidates. Callers must not modify or
	// retain the slice across AddHint calls.
	Suggest() []string

	// RemainingCount returns the number of candidates.
	RemainingCount() int
}

// Simple filters a flat word list on every AddHint call.
type Simple struct {
	width int
	words []string
}

var _ CandidateFilter = (*Simple)(nil)

// New builds an engine from words, keeping only those of exactly width runes
// in their original order.
func New(width int, words []string) (*Simple, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}
	pool := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) == width {
			pool = append(pool, w)
		}
	}
	return &Simple{width: width, words: pool}, nil
}

// Width returns the word length this engine was built for.
func (s *Simple) Width() int { return s.width }

// AddHint runs two steps in order: the guessed word is removed from the pool
// (if it has the right length), then the pool is filtered with the
// normalized hints.
func (s *Simple) AddHint(word string, hints []hint.Hint) error {
	if err := s.validate(hints); err != nil {
		return err
	}
	s.removeWord(word)
	s.updateWithHints(hints)
	return nil
}

func (s *Simple) Suggest() []string { return s.words }

func (s *Simple) RemainingCount() int { return len(s.words) }

func (s *Simple) validate(hints []hint.Hint) error {
	for i, h := range hints {
		if !unicode.IsLetter(h.Letter) {
			return fmt.Errorf("%w: hint %d: %q is not a letter", ErrPrecondition, i, h.Letter)
		}
		if h.Spot == nil {
			return fmt.Errorf("%w: hint %d has no spot", ErrPrecondition, i)
		}
		for _, p := range hint.Positions(h.Spot) {
			if p < 0 || p >= s.width {
				return fmt.Errorf("%w: hint %d: position %d outside [0,%d)", ErrPrecondition, i, p, s.width)
			}
		}
	}
	return nil
}

// removeWord drops the first occurrence of word by swapping the last
// candidate into its slot.
func (s *Simple) removeWord(word string) {
	if utf8.RuneCountInString(word) != s.width {
		return
	}
	for i, w := range s.words {
		if w == word {
			last := len(s.words) - 1
			s.words[i] = s.words[last]
			s.words[last] = ""
			s.words = s.words[:last]
			return
		}
	}
}

func (s *Simple) updateWithHints(hints []hint.Hint) {
	if len(hints) == 0 {
		return
	}
	m := compile(hint.Shrink(hints))

	kept := s.words[:0]
	for _, w := range s.words {
		if m.match(w) {
			kept = append(kept, w)
		}
	}
	clear(s.words[len(kept):])
	s.words = kept
}
