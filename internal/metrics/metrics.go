// internal/metrics/metrics.go
//
// Prometheus instruments for the solver service.
// Responsibilities:
//   - Count created sessions and applied guesses.
//   - Track how far each guess narrows the pool.
//   - Time dictionary loads (plugs into dictionary.Cached as a LoadObserver).
//
// Instruments register on the default registry via promauto and are served
// by promhttp at /metrics.

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wordle_solver"

// Guess outcomes.
const (
	GuessOK       = "ok"
	GuessRejected = "rejected"
	GuessSolved   = "solved"
)

var (
	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Solving sessions created",
	})

	guessesApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guesses_total",
		Help:      "Guesses reported to sessions, by outcome",
	}, []string{"outcome"})

	remainingWords = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remaining_candidates",
		Help:      "Candidate pool size after a guess",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	})

	dictionaryLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dictionary_load_seconds",
		Help:      "Time spent extracting words from the word source",
		Buckets:   prometheus.DefBuckets,
	}, []string{"length", "status"})

	dictionaryWords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dictionary_words",
		Help:      "Words returned by the last successful load, by length",
	}, []string{"length"})
)

// SessionCreated records a new session.
func SessionCreated() { sessionsCreated.Inc() }

// GuessApplied records a guess outcome and, unless rejected, the pool size
// it left behind.
func GuessApplied(outcome string, remaining int) {
	guessesApplied.WithLabelValues(outcome).Inc()
	if outcome != GuessRejected {
		remainingWords.Observe(float64(remaining))
	}
}

// DictionaryLoaded has the shape of dictionary.LoadObserver.
func DictionaryLoaded(length, count int, took time.Duration, err error) {
	l := strconv.Itoa(length)
	status := "ok"
	if err != nil {
		status = "error"
	}
	dictionaryLoadDuration.WithLabelValues(l, status).Observe(took.Seconds())
	if err == nil {
		dictionaryWords.WithLabelValues(l).Set(float64(count))
	}
}
