// internal/session/types.go
//
// Type definitions for persisted solving sessions.
// Defines:
//   - Guess: one reported guess and the hints it produced.
//   - Session: a player's in-progress puzzle, i.e. the candidate pool left
//     after every reported guess.

package session

import (
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/hint"
)

// Guess records a reported guess.
type Guess struct {
	Word      string      `json:"word"`
	Hints     []hint.Hint `json:"hints"`
	Remaining int         `json:"remaining"` // pool size after this guess
	At        time.Time   `json:"at"`
}

// Session holds the state of a single solving session.
type Session struct {
	ID        string    `json:"id"`                 // UUID
	Owner     string    `json:"owner"`              // token subject, empty when auth is off
	Width     int       `json:"width"`              // letters per word
	Pool      []string  `json:"pool"`               // remaining candidates
	Guesses   []Guess   `json:"guesses"`            // in report order
	Solution  string    `json:"solution,omitempty"` // set once a guess is reported all green
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
