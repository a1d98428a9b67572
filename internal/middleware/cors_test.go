package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSEchoesArbitraryOrigin(t *testing.T) {
	called := false
	fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	h := CORS()(fn)
	req := httptest.NewRequest(http.MethodPost, "http://localhost/query", nil)
	req.Header.Set("Origin", "http://frontend.example.com")
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	if !called {
		t.Fatalf("expected downstream handler to be called for POST request")
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://frontend.example.com" {
		t.Fatalf("expected origin to be echoed, got %q", got)
	}
	if got := resp.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("expected Access-Control-Allow-Credentials 'true', got %q", got)
	}
}

func TestCORSHandlesPreflightWithoutCallingNext(t *testing.T) {
	called := false
	fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	h := CORS()(fn)
	req := httptest.NewRequest(http.MethodOptions, "http://localhost/query", nil)
	req.Header.Set("Origin", "http://another.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Anything")
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	if called {
		t.Fatalf("expected preflight request to be handled by CORS middleware without calling downstream handler")
	}
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for preflight, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://another.example.org" {
		t.Fatalf("expected preflight to grant the requesting origin, got %q", got)
	}
	if got := resp.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatalf("expected Access-Control-Allow-Methods header to be set")
	}
	if got := resp.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Fatalf("expected Access-Control-Allow-Headers header to be set")
	}
	if got := resp.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("expected credentials to be allowed on preflight, got %q", got)
	}
}
