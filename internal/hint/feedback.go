// internal/hint/feedback.go
//
// Per-letter feedback for a guess and its conversion into hints.
// Responsibilities:
//   - Score a guess against a known answer (classic two-pass Wordle algorithm).
//   - Parse a compact feedback pattern typed by a player ("gy.b.", "21000").
//   - Turn (guess, marks) into the Hint batch the solver consumes.
//
// Notes:
//   - Positions are rune positions, so non-ASCII alphabets work unchanged.
//   - A miss on a letter that is hit or present elsewhere in the same guess
//     only tells us the letter is not at that slot; it becomes PresentNotAt
//     instead of Absent.

package hint

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Mark represents the evaluation result for a single letter in a guess.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

var (
	ErrLengthMismatch = errors.New("hint: guess and feedback lengths differ")
	ErrBadPattern     = errors.New("hint: invalid feedback pattern")
)

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) answer letters.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that letter,
//     mark Present and decrement the count; otherwise mark Miss.
//
// Returns ErrLengthMismatch when answer and guess differ in rune length.
func Score(answer, guess string) ([]Mark, error) {
	answerRunes := []rune(answer)
	guessRunes := []rune(guess)
	if len(answerRunes) != len(guessRunes) {
		return nil, ErrLengthMismatch
	}

	n := len(guessRunes)
	res := make([]Mark, n)
	counts := make(map[rune]int, n)

	for i := 0; i < n; i++ {
		if guessRunes[i] == answerRunes[i] {
			res[i] = MarkHit
		} else {
			counts[answerRunes[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		if c := guessRunes[i]; counts[c] > 0 {
			res[i] = MarkPresent
			counts[c]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res, nil
}

// ParsePattern reads a feedback pattern, one symbol per letter:
//
//	g G 2      hit
//	y Y 1      present
//	b B x X 0 . -  miss
func ParsePattern(pattern string) ([]Mark, error) {
	marks := make([]Mark, 0, utf8.RuneCountInString(pattern))
	for i, r := range []rune(pattern) {
		switch r {
		case 'g', 'G', '2':
			marks = append(marks, MarkHit)
		case 'y', 'Y', '1':
			marks = append(marks, MarkPresent)
		case 'b', 'B', 'x', 'X', '0', '.', '-':
			marks = append(marks, MarkMiss)
		default:
			return nil, fmt.Errorf("%w: %q at %d", ErrBadPattern, r, i)
		}
	}
	return marks, nil
}

// FromMarks converts the feedback for guess into hints, one per letter, in
// guess order.
func FromMarks(guess string, marks []Mark) ([]Hint, error) {
	letters := []rune(guess)
	if len(letters) != len(marks) {
		return nil, ErrLengthMismatch
	}

	found := make(map[rune]bool, len(letters))
	for i, m := range marks {
		if m == MarkHit || m == MarkPresent {
			found[letters[i]] = true
		}
	}

	hints := make([]Hint, 0, len(letters))
	for i, m := range marks {
		l := letters[i]
		switch m {
		case MarkHit:
			hints = append(hints, New(l, At(i)))
		case MarkPresent:
			hints = append(hints, New(l, NotAt(i)))
		case MarkMiss:
			if found[l] {
				hints = append(hints, New(l, NotAt(i)))
			} else {
				hints = append(hints, New(l, None()))
			}
		default:
			return nil, fmt.Errorf("%w: mark %q", ErrBadPattern, m)
		}
	}
	return hints, nil
}

// FromPattern is ParsePattern followed by FromMarks.
func FromPattern(guess, pattern string) ([]Hint, error) {
	marks, err := ParsePattern(pattern)
	if err != nil {
		return nil, err
	}
	return FromMarks(guess, marks)
}

// AllHit reports whether every mark is a hit, i.e. the guess was the answer.
func AllHit(marks []Mark) bool {
	if len(marks) == 0 {
		return false
	}
	for _, m := range marks {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// Solves reports whether hints place every letter of word at its own
// position, which is what an all-green report for word looks like.
func Solves(word string, hints []Hint) bool {
	letters := []rune(word)
	if len(letters) == 0 {
		return false
	}
	placed := make([]bool, len(letters))
	for _, h := range hints {
		at, ok := h.Spot.(AtPosition)
		if !ok || at.Index < 0 || at.Index >= len(letters) || letters[at.Index] != h.Letter {
			continue
		}
		placed[at.Index] = true
	}
	for _, p := range placed {
		if !p {
			return false
		}
	}
	return true
}
