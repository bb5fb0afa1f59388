package odin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newOdin(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != verifyPath || r.Header.Get("X-Api-Key") != "k" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch body["token"] {
		case "good":
			_ = json.NewEncoder(w).Encode(map[string]string{"user_id": " u1 ", "email": "a@b.c"})
		case "empty":
			_ = json.NewEncoder(w).Encode(map[string]string{})
		case "boom":
			http.Error(w, "boom", http.StatusBadGateway)
		default:
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerifier_Odin(t *testing.T) {
	srv := newOdin(t)
	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	v := NewVerifier(c)
	ctx := context.Background()

	claims, err := v.Verify(ctx, "good")
	if err != nil || claims.UserID != "u1" || claims.Email != "a@b.c" {
		t.Fatalf("unexpected: %+v err=%v", claims, err)
	}

	if _, err := v.Verify(ctx, "bad"); !errors.Is(err, ErrOdinUnauthorized) {
		t.Fatalf("expected ErrOdinUnauthorized, got %v", err)
	}
	if _, err := v.Verify(ctx, "boom"); !errors.Is(err, ErrOdinUpstream) {
		t.Fatalf("expected ErrOdinUpstream, got %v", err)
	}
	if _, err := v.Verify(ctx, "empty"); !errors.Is(err, ErrOdinUpstream) {
		t.Fatalf("expected ErrOdinUpstream for missing user_id, got %v", err)
	}
	if _, err := v.Verify(ctx, " "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestClient_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	if _, err := NewVerifier(c).Verify(context.Background(), "x"); !errors.Is(err, ErrOdinNotConfigured) {
		t.Fatalf("expected ErrOdinNotConfigured, got %v", err)
	}
}
