package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("Appointment"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("Validation failed", []string{"PatientName is required"}), CodeValidation, http.StatusBadRequest},
		{"invalid input", InvalidInput("Invalid status type"), CodeInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("slot taken"), CodeConflict, http.StatusConflict},
		{"internal", Internal("store failure", errors.New("timeout")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("store failure", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause must be reachable via errors.Is")
	}

	msg := err.Error()
	want := fmt.Sprintf("%s: store failure (caused by: connection refused)", CodeInternal)
	if msg != want {
		t.Errorf("expected %q, got %q", want, msg)
	}
}

func TestValidationCarriesDetails(t *testing.T) {
	details := []string{"PatientName is required", "Treatment is required"}
	err := Validation("Validation failed", details)

	if len(err.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(err.Details))
	}
}

func TestWithDetails(t *testing.T) {
	err := NotFound("Appointment").WithDetails([]string{"id: abc"})
	if len(err.Details) != 1 {
		t.Errorf("expected attached details, got %v", err.Details)
	}
}
