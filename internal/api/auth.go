package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/truemindlabs-dev/synora/pkg/errors"
)

// defaultJWTSecret is the development placeholder. Tokens are accepted
// without signature verification while it is in use, mirroring debug mode.
const defaultJWTSecret = "default-secret-change-in-production"

// UserContext identifies the authenticated caller.
type UserContext struct {
	ID       string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Picture  string `json:"picture,omitempty"`
	Provider string `json:"provider"`
}

type contextKey string

const userContextKey contextKey = "user"

// userFrom returns the authenticated user stored by the middleware.
func userFrom(ctx context.Context) (UserContext, bool) {
	u, ok := ctx.Value(userContextKey).(UserContext)
	return u, ok
}

// authenticate resolves the caller identity. Credentials are tried in
// order: a Bearer JWT, then X-User-Id/X-User-Email headers, then an
// anonymous development identity when debug mode is on. An invalid JWT
// falls through to the next mechanism rather than failing the request.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := s.userFromJWT(r); ok {
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
			return
		}
		if user, ok := userFromHeaders(r); ok {
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
			return
		}
		if s.cfg.Server.Debug {
			user := UserContext{
				ID:       "dev_user_001",
				Email:    "dev@synora.dev",
				Name:     "Developer",
				Provider: "debug",
			}
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
			return
		}
		respondError(w, errors.New(errors.ErrCodeUnauthorized, "authentication required"))
	})
}

func withUser(ctx context.Context, user UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func (s *Server) userFromJWT(r *http.Request) (UserContext, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return UserContext{}, false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := jwt.MapClaims{}
	secret := s.cfg.Auth.JWTSecret
	if s.cfg.Server.Debug || secret == defaultJWTSecret {
		// No trustworthy secret exists yet, so accept the claims as-is.
		if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
			return UserContext{}, false
		}
	} else {
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New(errors.ErrCodeUnauthorized, "unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return UserContext{}, false
		}
	}

	id := firstClaim(claims, "sub", "user_id", "id")
	if id == "" {
		return UserContext{}, false
	}
	return UserContext{
		ID:       id,
		Email:    firstClaim(claims, "email"),
		Name:     firstClaim(claims, "name"),
		Picture:  firstClaim(claims, "picture"),
		Provider: "google",
	}, true
}

func userFromHeaders(r *http.Request) (UserContext, bool) {
	id := r.Header.Get("X-User-Id")
	email := r.Header.Get("X-User-Email")
	if id == "" || email == "" {
		return UserContext{}, false
	}
	return UserContext{
		ID:       id,
		Email:    email,
		Provider: "header",
	}, true
}

func firstClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
