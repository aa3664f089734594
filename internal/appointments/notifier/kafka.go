package notifier

import (
	"context"
	"time"

	"medibook/pkg/kafka"
	"medibook/pkg/model"
)

const eventTypeBooked = "appointment.booked"

// BookedEvent is the payload published for every successful booking, keyed
// by appointment ID so downstream consumers see per-appointment ordering.
type BookedEvent struct {
	AppointmentID string          `json:"appointment_id"`
	PatientName   string          `json:"patient_name"`
	Treatment     model.Treatment `json:"treatment"`
	Date          time.Time       `json:"date"`
	TimeSlot      model.TimeSlot  `json:"time_slot"`
	Contact       string          `json:"contact,omitempty"`
}

// KafkaNotifier publishes booking events for a real delivery channel (email
// or SMS worker) to consume.
type KafkaNotifier struct {
	producer *kafka.Producer
}

func NewKafkaNotifier(producer *kafka.Producer) *KafkaNotifier {
	return &KafkaNotifier{producer: producer}
}

func (n *KafkaNotifier) Notify(ctx context.Context, appointment *model.Appointment) error {
	contact := appointment.Phone
	if contact == "" {
		contact = appointment.Email
	}

	event := BookedEvent{
		AppointmentID: appointment.ID,
		PatientName:   appointment.PatientName,
		Treatment:     appointment.Treatment,
		Date:          appointment.Date,
		TimeSlot:      appointment.TimeSlot,
		Contact:       contact,
	}

	return n.producer.Publish(ctx, appointment.ID, eventTypeBooked, event)
}
