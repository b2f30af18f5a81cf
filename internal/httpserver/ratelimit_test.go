package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPLimiters_EvictsIdle(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	l := newIPLimiters(1, 1)
	l.now = func() time.Time { return at }

	first := l.get("10.0.0.1")
	l.get("10.0.0.2")
	assert.Equal(t, 2, l.size())

	// .2 stays active, .1 goes quiet
	at = at.Add(6 * time.Minute)
	l.get("10.0.0.2")
	at = at.Add(6 * time.Minute)
	l.get("10.0.0.3")
	assert.Equal(t, 2, l.size())

	assert.NotSame(t, first, l.get("10.0.0.1"))
	assert.Equal(t, 3, l.size())
}

func TestIPLimiters_KeepsBusyBucket(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	l := newIPLimiters(1, 1)
	l.now = func() time.Time { return at }

	lim := l.get("10.0.0.1")
	for i := 0; i < 5; i++ {
		at = at.Add(5 * time.Minute)
		assert.Same(t, lim, l.get("10.0.0.1"))
	}
}

func TestIPLimiters_Middleware(t *testing.T) {
	l := newIPLimiters(0.001, 1)
	h := l.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:1111"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:2222"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2:1111"))
	assert.Equal(t, 2, l.size())
}
