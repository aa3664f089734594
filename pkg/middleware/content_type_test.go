package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestContentTypeValidation(t *testing.T) {
	handler := ContentTypeValidation(testLogger())(okHandler())

	tests := []struct {
		name        string
		method      string
		contentType string
		wantStatus  int
	}{
		{"json post", http.MethodPost, "application/json", http.StatusOK},
		{"json with charset", http.MethodPost, "application/json; charset=utf-8", http.StatusOK},
		{"plain text post", http.MethodPost, "text/plain", http.StatusUnsupportedMediaType},
		{"form post", http.MethodPost, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"missing header on put", http.MethodPut, "", http.StatusUnsupportedMediaType},
		{"get without header", http.MethodGet, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/appointments/createAppointment", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus == http.StatusUnsupportedMediaType &&
				!strings.Contains(rec.Body.String(), "Content-Type must be application/json") {
				t.Errorf("expected the content-type error body, got: %s", rec.Body.String())
			}
		})
	}
}
