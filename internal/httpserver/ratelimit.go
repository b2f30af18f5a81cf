package httpserver

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterIdle is how long an IP may go quiet before its bucket is dropped.
// A dropped bucket comes back full, which an idle client would have
// refilled to anyway.
const limiterIdle = 10 * time.Minute

type ipLimiter struct {
	lim  *rate.Limiter
	seen time.Time
}

// ipLimiters hands out one token bucket per client IP and forgets IPs that
// have been idle for longer than idle.
type ipLimiters struct {
	rps   rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time

	mu        sync.Mutex
	limiters  map[string]*ipLimiter
	lastSweep time.Time
}

func newIPLimiters(rps rate.Limit, burst int) *ipLimiters {
	return &ipLimiters{
		rps:      rps,
		burst:    burst,
		idle:     limiterIdle,
		now:      time.Now,
		limiters: make(map[string]*ipLimiter),
	}
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	e, ok := l.limiters[ip]
	if !ok {
		e = &ipLimiter{lim: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[ip] = e
	}
	e.seen = now
	return e.lim
}

// sweep drops idle entries. Callers hold mu.
func (l *ipLimiters) sweep(now time.Time) {
	for ip, e := range l.limiters {
		if now.Sub(e.seen) > l.idle {
			delete(l.limiters, ip)
		}
	}
	l.lastSweep = now
}

func (l *ipLimiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// rateLimit rejects requests beyond rps per client IP with 429. Must run
// after chimw.RealIP. rps <= 0 disables it.
func rateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	return newIPLimiters(rate.Limit(rps), burst).middleware
}

func (l *ipLimiters) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
		if !l.get(ip).Allow() {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "rate_limited")
			return
		}
		next.ServeHTTP(w, r)
	})
}
