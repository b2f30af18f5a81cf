package hint

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// wireHint is the JSON shape of a Hint:
//
//	{"letter":"o","spot":"at","positions":[1]}
type wireHint struct {
	Letter    string `json:"letter"`
	Spot      Kind   `json:"spot"`
	Positions []int  `json:"positions,omitempty"`
}

func (h Hint) MarshalJSON() ([]byte, error) {
	if h.Spot == nil {
		return nil, fmt.Errorf("hint: %q has no spot", h.Letter)
	}
	return json.Marshal(wireHint{
		Letter:    string(h.Letter),
		Spot:      KindOf(h.Spot),
		Positions: Positions(h.Spot),
	})
}

func (h *Hint) UnmarshalJSON(data []byte) error {
	var w wireHint
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if utf8.RuneCountInString(w.Letter) != 1 {
		return fmt.Errorf("hint: letter must be a single character, got %q", w.Letter)
	}
	letter, _ := utf8.DecodeRuneInString(w.Letter)

	var spot Spot
	switch w.Spot {
	case KindAt:
		if len(w.Positions) != 1 {
			return fmt.Errorf("hint: %q spot needs exactly one position", w.Spot)
		}
		spot = At(w.Positions[0])
	case KindPresent:
		spot = NotAt(w.Positions...)
	case KindAbsent:
		spot = None()
	default:
		return fmt.Errorf("hint: unknown spot %q", w.Spot)
	}
	*h = New(letter, spot)
	return nil
}
