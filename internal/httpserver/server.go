// internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, CORS, panic recovery,
//     timeouts, JSON content type, request logging, per-IP rate limiting).
//   - Public endpoints: "/", "/health", "/metrics", "POST /auth/token".
//   - Session endpoints (auth when enabled): create, inspect, report a
//     guess, delete.
//
// Notes:
//   - Sessions are read-modify-write against the store; guesses are
//     serialized so two reports against one session cannot interleave.
//   - CORS is credentialed and allows a single configured origin.
//   - When auth is enabled a session is only visible to the token subject
//     that created it; anyone else gets a 404.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/dictionary"
	"github.com/robalobadob/wordle/apps/go-solver/internal/hint"
	"github.com/robalobadob/wordle/apps/go-solver/internal/metrics"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

// Options configures a Server.
type Options struct {
	Dictionary   dictionary.Source
	Store        store.Store
	WordLength   int // default session width
	SuggestLimit int // default page size for suggestions; 0 means all

	// AuthSecretHash is a bcrypt hash of the shared client secret. Empty
	// disables auth entirely.
	AuthSecretHash string
	JWTSecret      string
	TokenTTL       time.Duration

	// ClientOrigin is the one browser origin allowed by CORS. Empty disables
	// the CORS headers.
	ClientOrigin string

	// RateLimitRPS <= 0 disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server bundles the router with its dependencies.
type Server struct {
	r        *chi.Mux
	opts     Options
	validate *validator.Validate

	guessMu sync.Mutex
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{r: chi.NewRouter(), opts: opts, validate: validator.New()}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(cors(opts.ClientOrigin))
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(rateLimit(opts.RateLimitRPS, opts.RateLimitBurst))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle-solver",
			"endpoints": []string{
				"/health", "/metrics", "POST /auth/token",
				"POST /sessions", "GET /sessions/{id}",
				"POST /sessions/{id}/guesses", "DELETE /sessions/{id}",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.r.Post("/auth/token", s.handleToken)

	s.r.Route("/sessions", func(r chi.Router) {
		r.Use(s.requireAuth())
		r.Post("/", s.handleNewSession)
		r.Get("/{id}", s.handleGetSession)
		r.Post("/{id}/guesses", s.handleGuess)
		r.Delete("/{id}", s.handleDeleteSession)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the router, for http.Server and tests.
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin and answers preflight
// requests itself.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger writes one zerolog line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Info().
				Str("requestId", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("took", time.Since(start)).
				Msg("http request")
		}()
		next.ServeHTTP(ww, r)
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decode reads a JSON body into v and validates it. An empty body is
// accepted when allowEmpty is set and leaves v as is.
func (s *Server) decode(r *http.Request, v any, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) && allowEmpty {
		err = nil
	}
	if err != nil {
		return errors.New("invalid_json")
	}
	return s.validate.Struct(v)
}

// ------------------------------ sessions -----------------------------------

type newSessionReq struct {
	Width int `json:"width" validate:"omitempty,min=1,max=32"`
}

type guessReq struct {
	Word    string      `json:"word" validate:"required"`
	Pattern string      `json:"pattern"`
	Hints   []hint.Hint `json:"hints"`
}

type sessionRes struct {
	ID          string          `json:"id"`
	Width       int             `json:"width"`
	Remaining   int             `json:"remaining"`
	Solved      bool            `json:"solved"`
	Answer      string          `json:"answer,omitempty"`
	Suggestions []string        `json:"suggestions"`
	Guesses     []session.Guess `json:"guesses,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toRes(sess *session.Session, limit int, withGuesses bool) sessionRes {
	res := sessionRes{
		ID:          sess.ID,
		Width:       sess.Width,
		Remaining:   sess.Remaining(),
		Solved:      sess.Solved(),
		Answer:      sess.Answer(),
		Suggestions: sess.Suggestions(limit),
		CreatedAt:   sess.CreatedAt,
		UpdatedAt:   sess.UpdatedAt,
	}
	if withGuesses {
		res.Guesses = sess.Guesses
	}
	return res
}

// limitParam reads ?limit=N, falling back to the configured page size.
func (s *Server) limitParam(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return s.opts.SuggestLimit, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("invalid_limit")
	}
	return n, nil
}

// loadSession fetches the session named in the URL and enforces ownership.
// It writes the error response itself and returns nil on failure.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) *session.Session {
	id := chi.URLParam(r, "id")
	sess, err := s.opts.Store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Str("sessionId", id).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return nil
	}
	if sess.Owner != subjectFrom(r.Context()) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil
	}
	return sess
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	req := newSessionReq{}
	if err := s.decode(r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	width := req.Width
	if width == 0 {
		width = s.opts.WordLength
	}

	words, err := s.opts.Dictionary.ExtractWords(r.Context(), width)
	if err != nil {
		log.Error().Err(err).Int("width", width).Msg("extract words")
		writeError(w, http.StatusBadGateway, "dictionary_unavailable")
		return
	}
	sess, err := session.New(subjectFrom(r.Context()), width, words)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.opts.Store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	metrics.SessionCreated()
	log.Info().Str("sessionId", sess.ID).Int("width", width).Int("candidates", sess.Remaining()).Msg("session created")

	writeJSON(w, http.StatusCreated, toRes(sess, s.opts.SuggestLimit, false))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	limit, err := s.limitParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sess := s.loadSession(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, toRes(sess, limit, true))
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := s.decode(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if (req.Pattern == "") == (req.Hints == nil) {
		writeError(w, http.StatusBadRequest, "exactly one of pattern or hints is required")
		return
	}
	limit, err := s.limitParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	word := strings.ToLower(strings.TrimSpace(req.Word))
	hints := req.Hints
	if req.Pattern != "" {
		if hints, err = hint.FromPattern(word, req.Pattern); err != nil {
			metrics.GuessApplied(metrics.GuessRejected, 0)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	for i := range hints {
		hints[i].Letter = unicode.ToLower(hints[i].Letter)
	}

	s.guessMu.Lock()
	defer s.guessMu.Unlock()

	sess := s.loadSession(w, r)
	if sess == nil {
		return
	}
	remaining, err := sess.ApplyGuess(word, hints)
	if err != nil {
		metrics.GuessApplied(metrics.GuessRejected, 0)
		if errors.Is(err, solver.ErrPrecondition) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Str("sessionId", sess.ID).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}
	if err := s.opts.Store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Str("sessionId", sess.ID).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	outcome := metrics.GuessOK
	if sess.Solved() {
		outcome = metrics.GuessSolved
	}
	metrics.GuessApplied(outcome, remaining)
	log.Debug().Str("sessionId", sess.ID).Str("word", word).Int("remaining", remaining).Msg("guess applied")

	writeJSON(w, http.StatusOK, toRes(sess, limit, false))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess := s.loadSession(w, r)
	if sess == nil {
		return
	}
	if err := s.opts.Store.Delete(r.Context(), sess.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error().Err(err).Str("sessionId", sess.ID).Msg("delete session")
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
