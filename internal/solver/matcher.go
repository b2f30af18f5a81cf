package solver

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/go-solver/internal/hint"
)

type placedLetter struct {
	letter rune
	index  int
}

// matcher is one normalized hint batch compiled for fast word checks.
// PresentNotAt hints for the same letter are merged into a single set of
// excluded positions.
type matcher struct {
	absent  map[rune]struct{}
	present map[rune]*bitset.BitSet
	placed  []placedLetter
}

func compile(hints []hint.Hint) *matcher {
	m := &matcher{
		absent:  make(map[rune]struct{}),
		present: make(map[rune]*bitset.BitSet),
	}
	for _, h := range hints {
		switch spot := h.Spot.(type) {
		case hint.Absent:
			m.absent[h.Letter] = struct{}{}
		case hint.PresentNotAt:
			excluded, ok := m.present[h.Letter]
			if !ok {
				excluded = bitset.New(0)
				m.present[h.Letter] = excluded
			}
			for _, p := range spot.Indices {
				excluded.Set(uint(p))
			}
		case hint.AtPosition:
			m.placed = append(m.placed, placedLetter{letter: h.Letter, index: spot.Index})
		default:
			panic(fmt.Sprintf("solver: unhandled spot %T", h.Spot))
		}
	}
	return m
}

// match reports whether word satisfies every compiled hint.
func (m *matcher) match(word string) bool {
	letters := []rune(word)

	for _, p := range m.placed {
		if letters[p.index] != p.letter {
			return false
		}
	}

	for letter, excluded := range m.present {
		found := false
		for i, l := range letters {
			if l != letter {
				continue
			}
			if excluded.Test(uint(i)) {
				return false
			}
			found = true
		}
		if !found {
			return false
		}
	}

	if len(m.absent) > 0 {
		for _, l := range letters {
			if _, ok := m.absent[l]; ok {
				return false
			}
		}
	}
	return true
}
