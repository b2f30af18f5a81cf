package hint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShrink_DropsAbsentSupersededByAt(t *testing.T) {
	actual := Shrink([]Hint{
		New('r', None()),
		New('o', At(1)),
		New('b', None()),
		New('o', None()),
		New('t', At(4)),
	})

	assert.Equal(t, []Hint{
		New('r', None()),
		New('o', At(1)),
		New('b', None()),
		New('t', At(4)),
	}, actual)
}

func TestShrink(t *testing.T) {
	tests := []struct {
		name  string
		hints []Hint
		want  []Hint
	}{
		{
			name:  "empty",
			hints: nil,
			want:  []Hint{},
		},
		{
			name:  "absent before at is still dropped",
			hints: []Hint{New('l', None()), New('l', At(3))},
			want:  []Hint{New('l', At(3))},
		},
		{
			name:  "present-not-at never supersedes absent",
			hints: []Hint{New('e', NotAt(2)), New('e', None())},
			want:  []Hint{New('e', NotAt(2)), New('e', None())},
		},
		{
			name:  "at for another letter keeps absent",
			hints: []Hint{New('a', At(0)), New('b', None())},
			want:  []Hint{New('a', At(0)), New('b', None())},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shrink(tt.hints))
		})
	}
}

func TestShrink_DoesNotModifyInput(t *testing.T) {
	in := []Hint{New('o', None()), New('o', At(1))}
	_ = Shrink(in)
	assert.Equal(t, []Hint{New('o', None()), New('o', At(1))}, in)
}

func TestNew_CopiesIndices(t *testing.T) {
	idx := []int{1, 2}
	h := New('a', PresentNotAt{Indices: idx})
	idx[0] = 4

	assert.Equal(t, []int{1, 2}, h.Spot.(PresentNotAt).Indices)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindAt, KindOf(At(0)))
	assert.Equal(t, KindPresent, KindOf(NotAt(1)))
	assert.Equal(t, KindAbsent, KindOf(None()))
	assert.Panics(t, func() { KindOf(nil) })
}

func TestHintString(t *testing.T) {
	assert.Equal(t, "o:at(1)", New('o', At(1)).String())
	assert.Equal(t, "e:present-not-at(0,4)", New('e', NotAt(0, 4)).String())
	assert.Equal(t, "z:absent", New('z', None()).String())
}

func TestScore(t *testing.T) {
	tests := []struct {
		answer, guess string
		want          []Mark
	}{
		{"crane", "crane", []Mark{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit}},
		{"crane", "slate", []Mark{MarkMiss, MarkMiss, MarkHit, MarkMiss, MarkHit}},
		// only one 'e' in the answer: the second 'e' of the guess is a miss
		{"abide", "speed", []Mark{MarkMiss, MarkMiss, MarkPresent, MarkMiss, MarkPresent}},
		{"early", "robot", []Mark{MarkPresent, MarkMiss, MarkMiss, MarkMiss, MarkMiss}},
	}

	for _, tt := range tests {
		t.Run(tt.answer+"/"+tt.guess, func(t *testing.T) {
			got, err := Score(tt.answer, tt.guess)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Score("crane", "dog")
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestParsePattern(t *testing.T) {
	marks, err := ParsePattern("gY.1x")
	require.NoError(t, err)
	assert.Equal(t, []Mark{MarkHit, MarkPresent, MarkMiss, MarkPresent, MarkMiss}, marks)

	_, err = ParsePattern("gq")
	assert.ErrorIs(t, err, ErrBadPattern)
}

func TestFromMarks(t *testing.T) {
	t.Run("one hint per letter", func(t *testing.T) {
		hints, err := FromPattern("slate", "b.gyg")
		require.NoError(t, err)
		assert.Equal(t, []Hint{
			New('s', None()),
			New('l', None()),
			New('a', At(2)),
			New('t', NotAt(3)),
			New('e', At(4)),
		}, hints)
	})

	t.Run("miss on a letter found elsewhere excludes only that slot", func(t *testing.T) {
		hints, err := FromPattern("speed", "bbybg")
		require.NoError(t, err)
		assert.Equal(t, New('e', NotAt(2)), hints[2])
		assert.Equal(t, New('e', NotAt(3)), hints[3])
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := FromPattern("slate", "bbg")
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})
}

func TestHintJSON(t *testing.T) {
	in := []Hint{New('o', At(1)), New('e', NotAt(0, 4)), New('z', None())}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"letter":"o","spot":"at","positions":[1]},
		{"letter":"e","spot":"present","positions":[0,4]},
		{"letter":"z","spot":"absent"}
	]`, string(data))

	var out []Hint
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestHintJSON_Rejects(t *testing.T) {
	tests := map[string]string{
		"two letters":     `{"letter":"ab","spot":"absent"}`,
		"unknown spot":    `{"letter":"a","spot":"near"}`,
		"at without pos":  `{"letter":"a","spot":"at"}`,
		"at with two pos": `{"letter":"a","spot":"at","positions":[1,2]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var h Hint
			assert.Error(t, json.Unmarshal([]byte(body), &h))
		})
	}
}

func TestAllHit(t *testing.T) {
	assert.True(t, AllHit([]Mark{MarkHit, MarkHit}))
	assert.False(t, AllHit([]Mark{MarkHit, MarkPresent}))
	assert.False(t, AllHit(nil))
}

func TestSolves(t *testing.T) {
	win, err := FromPattern("asset", "ggggg")
	require.NoError(t, err)
	assert.True(t, Solves("asset", win))

	near, err := FromPattern("asset", "ggggb")
	require.NoError(t, err)
	assert.False(t, Solves("asset", near))

	// placements for a different word do not count
	assert.False(t, Solves("early", win))
	assert.False(t, Solves("", nil))
}
