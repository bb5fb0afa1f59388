package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-explorer/internal/adapters/auth/jwtauth"
	"pet-explorer/internal/domain/catalog"
	"pet-explorer/internal/middleware"
	"pet-explorer/internal/platform/clock"
	"pet-explorer/internal/router"
)

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default(clock.Fixed(2021))
	}
	h, err := router.NewRouter(opts)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_AdoptBuddy(t *testing.T) {
	now := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	ts := newServer(t, router.Options{Now: func() time.Time { return now }})

	userID := "user-1"

	// 1) Catálogo: dogs en 5° lugar, Buddy primero con 3 años
	{
		st, body := doReq(t, ts.URL, "GET", "/categories", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing categories, got %d", st)
		}
		var cats []struct {
			Category string `json:"category"`
			Label    string `json:"label"`
			Count    int    `json:"count"`
		}
		mustJSON(t, body, &cats)
		if len(cats) != 11 || cats[4].Category != "dogs" || cats[4].Label != "Dogs" {
			t.Fatalf("unexpected categories: %+v", cats)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/categories/dogs/pets", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing dogs, got %d", st)
		}
		var pets []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Age      int    `json:"age"`
			AgeLabel string `json:"age_label"`
			ImageURL string `json:"image_url"`
		}
		mustJSON(t, body, &pets)
		if len(pets) == 0 || pets[0].ID != "dog1" || pets[0].Name != "Buddy" || pets[0].Age != 3 {
			t.Fatalf("unexpected first dog: %+v", pets)
		}
		if pets[0].AgeLabel != "3 years old" || pets[0].ImageURL != "/assets/dog1.png" {
			t.Fatalf("unexpected labels: %+v", pets[0])
		}
	}

	// 2) Sin identidad no se adopta
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/dog1/adopt", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user, got %d", st)
		}
	}

	// 3) Adoptar Buddy (dos veces: idempotente)
	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "POST", "/pets/dog1/adopt", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 adopting, got %d body=%s", st, string(body))
		}
	}

	// 4) Identidad desconocida: 404 y sin cambios
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/unicorn1/adopt", userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown pet, got %d", st)
		}
	}

	// 5) Estado y listado
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/dog1/adoption", userID, nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"adopted":true`) {
			t.Fatalf("expected dog1 adopted, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/pets/dog2/adoption", userID, nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"adopted":false`) {
			t.Fatalf("expected dog2 not adopted, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/me/adoptions", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing adoptions, got %d", st)
		}
		var out struct {
			SessionID string   `json:"session_id"`
			PetIDs    []string `json:"pet_ids"`
			Entries   []struct {
				PetID     string    `json:"pet_id"`
				AdoptedAt time.Time `json:"adopted_at"`
			} `json:"entries"`
		}
		mustJSON(t, body, &out)
		if out.SessionID != userID || len(out.PetIDs) != 1 || out.PetIDs[0] != "dog1" {
			t.Fatalf("unexpected adoptions: %+v", out)
		}
		if len(out.Entries) != 1 || !out.Entries[0].AdoptedAt.Equal(now) {
			t.Fatalf("unexpected entries: %+v", out.Entries)
		}
	}

	// 6) Otra sesión no ve la adopción
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/dog1/adoption", "user-2", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"adopted":false`) {
			t.Fatalf("expected isolation between sessions, got %d body=%s", st, string(body))
		}
	}

	// 7) Explorer: Buddy marcado en disponibles y en la sección de adoptados
	{
		st, body := doReq(t, ts.URL, "GET", "/explorer", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 explorer, got %d", st)
		}
		var v struct {
			Available []struct {
				Category string `json:"category"`
				Items    []struct {
					PetID   string `json:"pet_id"`
					Adopted bool   `json:"adopted"`
				} `json:"items"`
			} `json:"available"`
			Adopted []struct {
				PetID string `json:"pet_id"`
				Title string `json:"title"`
			} `json:"adopted"`
		}
		mustJSON(t, body, &v)
		if len(v.Available) != 11 || !v.Available[4].Items[0].Adopted {
			t.Fatalf("expected dog1 flagged as adopted: %+v", v.Available)
		}
		if len(v.Adopted) != 1 || v.Adopted[0].Title != "Your pet: Buddy" {
			t.Fatalf("unexpected adopted section: %+v", v.Adopted)
		}
	}
}

func TestHTTP_AdoptEchoesCanonicalID(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "POST", "/pets/%20dog1%20/adopt", "u1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 adopting padded id, got %d body=%s", st, string(body))
	}
	var out struct {
		PetID   string `json:"pet_id"`
		Adopted bool   `json:"adopted"`
	}
	mustJSON(t, body, &out)
	if out.PetID != "dog1" || !out.Adopted {
		t.Fatalf("expected canonical dog1, got %+v", out)
	}

	st, body = doReq(t, ts.URL, "GET", "/pets/%20dog1/adoption", "u1", nil)
	mustJSON(t, body, &out)
	if st != http.StatusOK || out.PetID != "dog1" || !out.Adopted {
		t.Fatalf("expected canonical dog1 status, got %d %+v", st, out)
	}
}

func TestHTTP_CatalogErrors(t *testing.T) {
	ts := newServer(t, router.Options{})

	if st, _ := doReq(t, ts.URL, "GET", "/categories/unicorns/pets", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for invalid category, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/pets/nope", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown pet, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/explorer", "", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 for explorer without user, got %d", st)
	}
}

func TestHTTP_SpanishExplorer(t *testing.T) {
	ts := newServer(t, router.Options{})

	req, _ := http.NewRequest("GET", ts.URL+"/categories", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"label":"Perros"`) {
		t.Fatalf("expected spanish labels, got %s", string(body))
	}
}

func TestHTTP_JWTAndRateLimit(t *testing.T) {
	v, err := jwtauth.NewVerifier("secret", "")
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	ts := newServer(t, router.Options{
		AuthVerifier: v,
		RateLimit:    middleware.NewRateLimiter(0.001, 1),
	})

	tok, err := jwtauth.Issue("secret", "", "jwt-user", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	adopt := func(header string) int {
		req, _ := http.NewRequest("POST", ts.URL+"/pets/cat1/adopt", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		// con verifier, el header de debug no autentica
		req.Header.Set("X-Debug-User-ID", "intruder")
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("do request: %v", err)
		}
		res.Body.Close()
		return res.StatusCode
	}

	if st := adopt(""); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without bearer, got %d", st)
	}
	if st := adopt("Bearer " + tok); st != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", st)
	}
	if st := adopt("Bearer " + tok); st != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on second adopt, got %d", st)
	}
}

func TestHTTP_HealthMetricsSwagger(t *testing.T) {
	ts := newServer(t, router.Options{})

	if st, body := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health: %d %s", st, string(body))
	}
	_, _ = doReq(t, ts.URL, "POST", "/pets/dog1/adopt", "u", nil)

	st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `pet_explorer_adoptions_total{category="dogs"} 1`) {
		t.Fatalf("expected adoption counter in metrics, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/pets/{petID}/adopt") {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

func mustJSON(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
