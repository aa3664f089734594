package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTreatmentValid(t *testing.T) {
	for _, treatment := range Treatments {
		if !treatment.Valid() {
			t.Errorf("%q must be valid", treatment)
		}
	}

	for _, invalid := range []Treatment{"", "Dermatology", "cardiology", "General checkup"} {
		if invalid.Valid() {
			t.Errorf("%q must be invalid", invalid)
		}
	}
}

func TestTimeSlotValid(t *testing.T) {
	for _, slot := range TimeSlots {
		if !slot.Valid() {
			t.Errorf("%q must be valid", slot)
		}
	}

	for _, invalid := range []TimeSlot{"", "09:00-10:00", "13:00 - 14:00"} {
		if invalid.Valid() {
			t.Errorf("%q must be invalid", invalid)
		}
	}
}

func TestGenderValid(t *testing.T) {
	for _, gender := range Genders {
		if !gender.Valid() {
			t.Errorf("%q must be valid", gender)
		}
	}

	for _, invalid := range []Gender{"", "male", "Unknown"} {
		if invalid.Valid() {
			t.Errorf("%q must be invalid", invalid)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, status := range Statuses {
		if !status.Valid() {
			t.Errorf("%q must be valid", status)
		}
	}

	for _, invalid := range []Status{"", "pending", "Cancelled"} {
		if invalid.Valid() {
			t.Errorf("%q must be invalid", invalid)
		}
	}
}

func TestAppointmentAgeZeroIsKept(t *testing.T) {
	age := 0
	appointment := Appointment{PatientName: "Ravi Kumar", Age: &age}

	encoded, err := json.Marshal(appointment)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(encoded), `"age":0`) {
		t.Errorf("explicit zero age must be serialized, got: %s", encoded)
	}

	encoded, err = json.Marshal(Appointment{PatientName: "Ravi Kumar"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(encoded), "age") {
		t.Errorf("absent age must be omitted, got: %s", encoded)
	}
}

func TestAppointmentRequestAgeDistinguishesAbsent(t *testing.T) {
	var withZero AppointmentRequest
	if err := json.Unmarshal([]byte(`{"patientName":"Ravi Kumar","age":0}`), &withZero); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if withZero.Age == nil || *withZero.Age != 0 {
		t.Errorf("expected age pointer to 0, got %v", withZero.Age)
	}

	var without AppointmentRequest
	if err := json.Unmarshal([]byte(`{"patientName":"Ravi Kumar"}`), &without); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if without.Age != nil {
		t.Errorf("expected nil age when absent, got %v", *without.Age)
	}
}
