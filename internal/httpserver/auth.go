// internal/httpserver/auth.go
//
// Token auth for the session API.
// Responsibilities:
//   - POST /auth/token: exchange the shared client secret (bcrypt-checked)
//     for an HS256 JWT whose subject is the client name.
//   - requireAuth: verify the bearer token and put its subject in the
//     request context.
//
// With no secret hash configured both are inert: /auth/token answers 404
// and requireAuth lets every request through with an empty subject.

package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type tokenReq struct {
	Client string `json:"client" validate:"required,max=64"`
	Secret string `json:"secret" validate:"required"`
}

type tokenRes struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ctxSubjectKey is the context key for the authenticated token subject.
type ctxSubjectKey struct{}

func subjectFrom(ctx context.Context) string {
	sub, _ := ctx.Value(ctxSubjectKey{}).(string)
	return sub
}

func (s *Server) authEnabled() bool { return s.opts.AuthSecretHash != "" }

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if !s.authEnabled() {
		writeError(w, http.StatusNotFound, "auth_disabled")
		return
	}
	var req tokenReq
	if err := s.decode(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(s.opts.AuthSecretHash), []byte(req.Secret)) != nil {
		log.Warn().Str("client", req.Client).Msg("rejected client secret")
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	tok, exp, err := s.signToken(strings.TrimSpace(req.Client))
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	writeJSON(w, http.StatusOK, tokenRes{Token: tok, ExpiresAt: exp})
}

// signToken creates an HS256 JWT for subject.
func (s *Server) signToken(subject string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.opts.TokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.opts.JWTSecret))
	return ss, exp.UTC().Truncate(time.Second), err
}

// bearer extracts the token from "Authorization: Bearer <token>".
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// requireAuth enforces a valid JWT when auth is enabled.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !s.authEnabled() {
				next.ServeHTTP(w, r)
				return
			}
			tokenStr := bearer(r)
			if tokenStr == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(s.opts.JWTSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
			if err != nil || !token.Valid || claims.Subject == "" {
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxSubjectKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
