package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSessionCreated(t *testing.T) {
	before := testutil.ToFloat64(sessionsCreated)
	SessionCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(sessionsCreated))
}

func TestGuessApplied(t *testing.T) {
	ok := guessesApplied.WithLabelValues(GuessOK)
	rejected := guessesApplied.WithLabelValues(GuessRejected)
	okBefore, rejBefore := testutil.ToFloat64(ok), testutil.ToFloat64(rejected)

	GuessApplied(GuessOK, 12)
	GuessApplied(GuessRejected, 0)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, rejBefore+1, testutil.ToFloat64(rejected))
}

func TestDictionaryLoaded(t *testing.T) {
	DictionaryLoaded(5, 498, 3*time.Millisecond, nil)
	assert.Equal(t, 498.0, testutil.ToFloat64(dictionaryWords.WithLabelValues("5")))

	DictionaryLoaded(5, 0, time.Millisecond, errors.New("boom"))
	assert.Equal(t, 498.0, testutil.ToFloat64(dictionaryWords.WithLabelValues("5")))
	assert.Equal(t, 2, testutil.CollectAndCount(dictionaryLoadDuration))
}
