package hint

// Shrink normalizes one batch of hints before it is applied.
//
// An Absent hint is dropped when the same batch also holds an AtPosition hint
// for that letter, at any position: a guess with a repeated letter reports the
// extra copy as absent while the letter is in fact placed elsewhere.
// PresentNotAt and AtPosition hints are always kept, and the relative order of
// the kept hints is unchanged. The input slice is not modified.
func Shrink(hints []Hint) []Hint {
	placed := make(map[rune]struct{})
	for _, h := range hints {
		if _, ok := h.Spot.(AtPosition); ok {
			placed[h.Letter] = struct{}{}
		}
	}

	out := make([]Hint, 0, len(hints))
	for _, h := range hints {
		if _, ok := h.Spot.(Absent); ok {
			if _, seen := placed[h.Letter]; seen {
				continue
			}
		}
		out = append(out, h)
	}
	return out
}
