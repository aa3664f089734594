package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const allowedOrigin = "http://localhost:5173"

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	handler := CORS(allowedOrigin)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/stats", nil)
	req.Header.Set("Origin", allowedOrigin)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != allowedOrigin {
		t.Errorf("expected the configured origin to be echoed, got %q", got)
	}
	if rec.Header().Get("Vary") != "Origin" {
		t.Errorf("expected Vary: Origin, got %q", rec.Header().Get("Vary"))
	}
}

func TestCORSIgnoresOtherOrigins(t *testing.T) {
	handler := CORS(allowedOrigin)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/stats", nil)
	req.Header.Set("Origin", "http://evil.example")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header for a foreign origin, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	invoked := false
	handler := CORS(allowedOrigin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		invoked = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/appointments/createAppointment", nil)
	req.Header.Set("Origin", allowedOrigin)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if invoked {
		t.Error("preflight must not reach the next handler")
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected allowed methods on the preflight response")
	}
	if rec.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Error("expected allowed headers on the preflight response")
	}
}
