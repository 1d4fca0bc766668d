package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/truemindlabs-dev/synora/internal/config"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func whoami(t *testing.T, h http.Handler, setup func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRejectsAnonymous(t *testing.T) {
	router := newTestServer(t, nil).Router()
	rec := whoami(t, router, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthDebugAnonymousUser(t *testing.T) {
	router := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.Debug = true
	}).Router()

	rec := whoami(t, router, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); !contains(got, "dev_user_001") {
		t.Errorf("body = %s", got)
	}
}

func TestAuthHeaderIdentity(t *testing.T) {
	router := newTestServer(t, nil).Router()
	rec := whoami(t, router, func(req *http.Request) {
		req.Header.Set("X-User-Id", "hdr-user")
		req.Header.Set("X-User-Email", "hdr@example.com")
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); !contains(body, "hdr-user") || !contains(body, `"provider":"header"`) {
		t.Errorf("body = %s", body)
	}

	// Id without email is not enough.
	rec = whoami(t, router, func(req *http.Request) {
		req.Header.Set("X-User-Id", "hdr-user")
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthVerifiedJWT(t *testing.T) {
	const secret = "unit-test-secret"
	router := newTestServer(t, func(cfg *config.Config) {
		cfg.Auth.JWTSecret = secret
	}).Router()

	token := signToken(t, secret, jwt.MapClaims{
		"sub":   "jwt-user",
		"email": "jwt@example.com",
		"name":  "JWT User",
	})
	rec := whoami(t, router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if body := rec.Body.String(); !contains(body, "jwt-user") || !contains(body, `"provider":"google"`) {
		t.Errorf("body = %s", body)
	}
}

func TestAuthBadJWTFallsThroughToHeaders(t *testing.T) {
	router := newTestServer(t, func(cfg *config.Config) {
		cfg.Auth.JWTSecret = "real-secret"
	}).Router()

	token := signToken(t, "wrong-secret", jwt.MapClaims{"sub": "evil"})
	rec := whoami(t, router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("X-User-Id", "hdr-user")
		req.Header.Set("X-User-Email", "hdr@example.com")
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if contains(body, "evil") {
		t.Error("forged token claims accepted")
	}
	if !contains(body, "hdr-user") {
		t.Errorf("body = %s", body)
	}
}

func TestAuthUnverifiedJWTWithDefaultSecret(t *testing.T) {
	// The shipped placeholder secret cannot authenticate anything, so
	// token claims are taken at face value.
	router := newTestServer(t, nil).Router()

	token := signToken(t, "whatever", jwt.MapClaims{
		"user_id": "claim-user",
		"email":   "claim@example.com",
	})
	rec := whoami(t, router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); !contains(body, "claim-user") {
		t.Errorf("body = %s", body)
	}
}

func TestAuthJWTWithoutSubjectFallsThrough(t *testing.T) {
	router := newTestServer(t, nil).Router()
	token := signToken(t, "x", jwt.MapClaims{"email": "no-id@example.com"})
	rec := whoami(t, router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
