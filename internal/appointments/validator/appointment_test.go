package validator

import (
	"strings"
	"testing"
	"time"

	"medibook/pkg/logger"
	"medibook/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func intPtr(v int) *int { return &v }

func validAppointment() *model.Appointment {
	return &model.Appointment{
		PatientName: "Ravi Kumar",
		Email:       "ravi@example.com",
		Phone:       "+919876543210",
		Gender:      model.GenderMale,
		Age:         intPtr(34),
		Treatment:   model.TreatmentCardiology,
		Date:        time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local),
		TimeSlot:    model.SlotMorningFirst,
		Status:      model.StatusPending,
	}
}

func TestValidate(t *testing.T) {
	v := NewAppointmentValidator(testLogger())

	tests := []struct {
		name      string
		mutate    func(a *model.Appointment)
		wantError bool
		wantField string
	}{
		{
			name:   "valid appointment",
			mutate: func(a *model.Appointment) {},
		},
		{
			name: "valid without optional fields",
			mutate: func(a *model.Appointment) {
				a.Email = ""
				a.Phone = ""
				a.Gender = ""
				a.Age = nil
			},
		},
		{
			name:   "zero age",
			mutate: func(a *model.Appointment) { a.Age = intPtr(0) },
		},
		{
			name:      "missing patient name",
			mutate:    func(a *model.Appointment) { a.PatientName = "" },
			wantError: true,
			wantField: "PatientName",
		},
		{
			name:      "patient name too short",
			mutate:    func(a *model.Appointment) { a.PatientName = "Al" },
			wantError: true,
			wantField: "PatientName",
		},
		{
			name:      "patient name too long",
			mutate:    func(a *model.Appointment) { a.PatientName = strings.Repeat("x", 21) },
			wantError: true,
			wantField: "PatientName",
		},
		{
			name:      "malformed email",
			mutate:    func(a *model.Appointment) { a.Email = "not-an-email" },
			wantError: true,
			wantField: "Email",
		},
		{
			name:      "phone without country code",
			mutate:    func(a *model.Appointment) { a.Phone = "9876543210" },
			wantError: true,
			wantField: "Phone",
		},
		{
			name:      "phone with wrong country code",
			mutate:    func(a *model.Appointment) { a.Phone = "+129876543210" },
			wantError: true,
			wantField: "Phone",
		},
		{
			name:      "unknown gender",
			mutate:    func(a *model.Appointment) { a.Gender = "Unknown" },
			wantError: true,
			wantField: "Gender",
		},
		{
			name:      "negative age",
			mutate:    func(a *model.Appointment) { a.Age = intPtr(-1) },
			wantError: true,
			wantField: "Age",
		},
		{
			name:      "unknown treatment",
			mutate:    func(a *model.Appointment) { a.Treatment = "Dermatology" },
			wantError: true,
			wantField: "Treatment",
		},
		{
			name:      "missing date",
			mutate:    func(a *model.Appointment) { a.Date = time.Time{} },
			wantError: true,
			wantField: "Date",
		},
		{
			name:      "unknown time slot",
			mutate:    func(a *model.Appointment) { a.TimeSlot = "13:00 - 14:00" },
			wantError: true,
			wantField: "TimeSlot",
		},
		{
			name:      "unknown status",
			mutate:    func(a *model.Appointment) { a.Status = "Cancelled" },
			wantError: true,
			wantField: "Status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointment := validAppointment()
			tt.mutate(appointment)

			err := v.Validate(appointment)
			if !tt.wantError {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			verrs, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}

			found := false
			for _, ve := range verrs {
				if ve.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error on field %q, got: %v", tt.wantField, verrs)
			}
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	v := NewAppointmentValidator(testLogger())

	appointment := validAppointment()
	appointment.PatientName = "Al"
	appointment.Treatment = "Dentistry"
	appointment.TimeSlot = "midnight"

	err := v.Validate(appointment)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 violations, got %d: %v", len(verrs), verrs)
	}
	if len(verrs.Messages()) != len(verrs) {
		t.Errorf("Messages() length mismatch: %d vs %d", len(verrs.Messages()), len(verrs))
	}
}

func TestValidationErrorMessages(t *testing.T) {
	v := NewAppointmentValidator(testLogger())

	appointment := validAppointment()
	appointment.Treatment = "Dentistry"

	err := v.Validate(appointment)
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}

	msg := verrs[0].Message
	if !strings.Contains(msg, "General Checkup") || !strings.Contains(msg, "ENT") {
		t.Errorf("expected message listing allowed treatments, got: %q", msg)
	}
}
