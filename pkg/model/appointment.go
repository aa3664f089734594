package model

import (
	"time"
)

// Treatment is the closed set of services the hospital offers bookings for.
type Treatment string

const (
	TreatmentGeneralCheckup Treatment = "General Checkup"
	TreatmentPediatrics     Treatment = "Pediatrics"
	TreatmentCardiology     Treatment = "Cardiology"
	TreatmentENT            Treatment = "ENT"
)

var Treatments = []Treatment{
	TreatmentGeneralCheckup,
	TreatmentPediatrics,
	TreatmentCardiology,
	TreatmentENT,
}

func (t Treatment) Valid() bool {
	for _, known := range Treatments {
		if t == known {
			return true
		}
	}
	return false
}

// TimeSlot is one of the fixed bookable time ranges of a day.
type TimeSlot string

const (
	SlotMorningFirst  TimeSlot = "09:00 - 10:00"
	SlotMorningSecond TimeSlot = "10:00 - 11:00"
	SlotMorningThird  TimeSlot = "11:00 - 12:00"
	SlotAfternoon     TimeSlot = "14:00 - 15:00"
)

var TimeSlots = []TimeSlot{
	SlotMorningFirst,
	SlotMorningSecond,
	SlotMorningThird,
	SlotAfternoon,
}

func (s TimeSlot) Valid() bool {
	for _, known := range TimeSlots {
		if s == known {
			return true
		}
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

func (g Gender) Valid() bool {
	for _, known := range Genders {
		if g == known {
			return true
		}
	}
	return false
}

// Status is the three-valued lifecycle marker of an appointment. Every status
// may move to every other status; there are no guarded transitions.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
)

var Statuses = []Status{StatusPending, StatusConfirmed, StatusCompleted}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Appointment is the sole persisted entity: one document per booked slot in
// the "bookings" collection. Only Status and UpdatedAt ever change after
// creation; nothing is deleted.
type Appointment struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	PatientName string    `json:"patientName" bson:"patientName" validate:"required,min=3,max=20"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,in_phone"`
	Gender      Gender    `json:"gender,omitempty" bson:"gender,omitempty" validate:"omitempty,gender"`
	// Age is a pointer so an explicit zero stays distinct from absent.
	Age *int `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,min=0"`
	Treatment   Treatment `json:"treatment" bson:"treatment" validate:"required,treatment"`
	Date        time.Time `json:"date" bson:"date" validate:"required"`
	TimeSlot    TimeSlot  `json:"timeSlot" bson:"timeSlot" validate:"required,timeslot"`
	Status      Status    `json:"status" bson:"status" validate:"required,status"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// AppointmentRequest is the booking form payload. Date arrives as an ISO
// string and is parsed by the service before the document is built.
type AppointmentRequest struct {
	PatientName string    `json:"patientName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Gender      Gender    `json:"gender"`
	Age         *int      `json:"age"`
	Treatment   Treatment `json:"treatment"`
	Date        string    `json:"date"`
	TimeSlot    TimeSlot  `json:"timeSlot"`
}

// StatusUpdate is the body of the status-change operation.
type StatusUpdate struct {
	Status Status `json:"status"`
}

// ListQuery carries the raw admin-panel filter and sort parameters. Values
// are validated against their allowed sets by the service, not here.
type ListQuery struct {
	Treatment string
	Date      string
	Status    string
	SortBy    string
	SortOrder string
}

// Stats is the dashboard aggregate. The six counts are independent queries
// over the live collection; they are not a consistent snapshot.
type Stats struct {
	Total     int64 `json:"total"`
	Today     int64 `json:"today"`
	Upcoming  int64 `json:"upcoming"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
}
