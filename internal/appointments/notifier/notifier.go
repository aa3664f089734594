package notifier

import (
	"context"
	"errors"

	"medibook/pkg/logger"
	"medibook/pkg/model"
)

// Notifier is invoked after a successful booking. Implementations must not
// block the create path on delivery guarantees; the service logs a failure
// and moves on.
type Notifier interface {
	Notify(ctx context.Context, appointment *model.Appointment) error
}

// LogNotifier simulates the admin email and patient SMS by emitting log
// lines. It stands in until a real transport is wired.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, appointment *model.Appointment) error {
	date := appointment.Date.Format("02/01/2006")
	contact := appointment.Phone
	if contact == "" {
		contact = appointment.Email
	}

	n.log.Info("EMAIL NOTIFICATION SENT TO ADMIN: new appointment booked",
		"patient", appointment.PatientName,
		"treatment", appointment.Treatment,
		"date", date,
		"time_slot", appointment.TimeSlot,
		"contact", contact,
	)

	n.log.Info("SMS NOTIFICATION SENT TO PATIENT",
		"message", "Dear "+appointment.PatientName+", your appointment for "+
			string(appointment.Treatment)+" on "+date+" at "+string(appointment.TimeSlot)+
			" has been booked successfully. Thank you - MGM Hospital",
	)

	return nil
}

type multiNotifier struct {
	notifiers []Notifier
}

// Multi fans a notification out to every given notifier and joins their
// failures.
func Multi(notifiers ...Notifier) Notifier {
	return &multiNotifier{notifiers: notifiers}
}

func (m *multiNotifier) Notify(ctx context.Context, appointment *model.Appointment) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.Notify(ctx, appointment); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
