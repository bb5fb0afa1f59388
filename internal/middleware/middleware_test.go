package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-explorer/internal/platform/logger"
	"pet-explorer/internal/ports/auth"
)

type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token == "good" {
		return auth.Claims{UserID: "u-42"}, nil
	}
	return auth.Claims{}, errors.New("bad token")
}

func echoSession() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, _ := SessionID(r.Context())
		_, _ = w.Write([]byte(uid))
	})
}

func TestAuthContext_DevHeader(t *testing.T) {
	h := AuthContext(nil, nil)(echoSession())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", " u1 ")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Body.String() != "u1" {
		t.Fatalf("expected u1, got %q", rr.Body.String())
	}
}

func TestAuthContext_Verifier(t *testing.T) {
	h := AuthContext(stubVerifier{}, logger.Nop())(echoSession())

	cases := map[string]string{
		"Bearer good": "u-42",
		"bearer good": "u-42",
		"Bearer nope": "",
		"Basic good":  "",
		"":            "",
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		// con verifier, el header de debug se ignora
		req.Header.Set("X-Debug-User-ID", "intruder")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Body.String() != want {
			t.Fatalf("header %q: expected %q got %q", header, want, rr.Body.String())
		}
	}
}

func TestRequestLog_WritesStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Output: &buf})

	h := RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pets/x", nil))

	out := buf.String()
	if !strings.Contains(out, "status=404") || !strings.Contains(out, "path=/pets/x") {
		t.Fatalf("unexpected log line: %q", out)
	}
}

func TestRateLimiter_PerSession(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	fixed := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return fixed }

	h := AuthContext(nil, nil)(rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/pets/dog1/adopt", nil)
		req.Header.Set("X-Debug-User-ID", user)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	if do("a") != http.StatusNoContent || do("a") != http.StatusNoContent {
		t.Fatalf("burst of 2 should pass")
	}
	if code := do("a"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if code := do("b"); code != http.StatusNoContent {
		t.Fatalf("other session must have its own bucket, got %d", code)
	}

	fixed = fixed.Add(time.Second)
	if code := do("a"); code != http.StatusNoContent {
		t.Fatalf("expected refill after 1s, got %d", code)
	}
}
