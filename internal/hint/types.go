// internal/hint/types.go
//
// Core type definitions for solver constraints.
// Defines:
//   - Spot: where a letter may (or may not) appear in the solution.
//   - Hint: an immutable (letter, spot) pair reported for one guessed letter.
//
// Spot is a closed set of three variants (AtPosition, PresentNotAt, Absent).
// Code that interprets a Spot switches over all three and panics on anything
// else; see Kind.

package hint

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type sealed interface{ spot() }

// Spot describes the position information a hint carries for its letter.
// Only the types in this package implement it.
type Spot interface {
	sealed
	String() string
}

// AtPosition means the letter occupies exactly Index (zero-based).
type AtPosition struct {
	Index int
}

// PresentNotAt means the letter occurs in the solution but at none of Indices.
type PresentNotAt struct {
	Indices []int
}

// Absent means the letter does not occur in the solution, unless an
// AtPosition hint for the same letter arrives in the same batch.
type Absent struct{}

func (AtPosition) spot()   {}
func (PresentNotAt) spot() {}
func (Absent) spot()       {}

func (s AtPosition) String() string { return "at(" + strconv.Itoa(s.Index) + ")" }

func (s PresentNotAt) String() string {
	parts := make([]string, len(s.Indices))
	for i, p := range s.Indices {
		parts[i] = strconv.Itoa(p)
	}
	return "present-not-at(" + strings.Join(parts, ",") + ")"
}

func (Absent) String() string { return "absent" }

// At builds an AtPosition spot.
func At(index int) Spot { return AtPosition{Index: index} }

// NotAt builds a PresentNotAt spot. The indices are copied.
func NotAt(indices ...int) Spot { return PresentNotAt{Indices: slices.Clone(indices)} }

// None builds an Absent spot.
func None() Spot { return Absent{} }

// Hint is a single letter constraint produced by comparing a guess against
// the hidden solution.
type Hint struct {
	Letter rune
	Spot   Spot
}

// New constructs a Hint.
func New(letter rune, spot Spot) Hint {
	if p, ok := spot.(PresentNotAt); ok {
		spot = PresentNotAt{Indices: slices.Clone(p.Indices)}
	}
	return Hint{Letter: letter, Spot: spot}
}

func (h Hint) String() string {
	if h.Spot == nil {
		return fmt.Sprintf("%c:<nil>", h.Letter)
	}
	return fmt.Sprintf("%c:%s", h.Letter, h.Spot)
}

// Kind is the wire name of a Spot variant.
type Kind string

const (
	KindAt      Kind = "at"
	KindPresent Kind = "present"
	KindAbsent  Kind = "absent"
)

// KindOf reports the variant name of s. It panics on a Spot it does not know.
func KindOf(s Spot) Kind {
	switch s.(type) {
	case AtPosition:
		return KindAt
	case PresentNotAt:
		return KindPresent
	case Absent:
		return KindAbsent
	default:
		panic(fmt.Sprintf("hint: unhandled spot %T", s))
	}
}

// Positions returns the positions a spot refers to (none for Absent).
func Positions(s Spot) []int {
	switch v := s.(type) {
	case AtPosition:
		return []int{v.Index}
	case PresentNotAt:
		return slices.Clone(v.Indices)
	case Absent:
		return nil
	default:
		panic(fmt.Sprintf("hint: unhandled spot %T", s))
	}
}
