package service

import (
	"context"
	"errors"
	"sync"
	"time"

	appointmenterrors "medibook/internal/appointments/errors"
	"medibook/internal/appointments/notifier"
	"medibook/internal/appointments/repository"
	"medibook/internal/appointments/validator"
	"medibook/pkg/config"
	apperrors "medibook/pkg/errors"
	"medibook/pkg/model"
	"medibook/pkg/sanitizer"
)

type AppointmentService interface {
	Create(ctx context.Context, req *model.AppointmentRequest) (*model.Appointment, error)
	List(ctx context.Context, query model.ListQuery) ([]*model.Appointment, error)
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Appointment, error)
	Stats(ctx context.Context) (*model.Stats, error)
}

type appointmentService struct {
	repo      repository.AppointmentRepository
	validator *validator.AppointmentValidator
	notifier  notifier.Notifier
	cfg       *config.Config
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	validator *validator.AppointmentValidator,
	notifier notifier.Notifier,
	cfg *config.Config,
) AppointmentService {
	return &appointmentService{
		repo:      repo,
		validator: validator,
		notifier:  notifier,
		cfg:       cfg,
	}
}

func (s *appointmentService) Create(ctx context.Context, req *model.AppointmentRequest) (*model.Appointment, error) {
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid date format")
	}

	appointment := &model.Appointment{
		PatientName: sanitizer.NormalizeName(req.PatientName),
		Email:       sanitizer.NormalizeEmail(req.Email),
		Phone:       sanitizer.NormalizePhone(req.Phone),
		Gender:      req.Gender,
		Age:         req.Age,
		Treatment:   req.Treatment,
		Date:        date,
		TimeSlot:    req.TimeSlot,
		Status:      model.StatusPending,
	}

	if err := s.validator.Validate(appointment); err != nil {
		s.cfg.Log.Warn("Appointment validation failed", "error", err)
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, apperrors.Validation("Validation failed", validationErrs.Messages())
		}
		return nil, apperrors.Validation("Validation failed", []string{err.Error()})
	}

	// Best-effort duplicate check. Not atomic with the insert below: two
	// concurrent creations for the same slot can both pass it.
	existing, err := s.repo.FindBySlot(ctx, appointment.PatientName, appointment.Date, appointment.TimeSlot)
	if err != nil && !errors.Is(err, appointmenterrors.ErrNotFound) {
		return nil, apperrors.Internal("Failed to check existing appointments", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("This time slot is already booked for the patient")
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		if errors.Is(err, appointmenterrors.ErrDuplicateSlot) {
			return nil, apperrors.Conflict("This time slot is already booked for the patient")
		}
		s.cfg.Log.Error("Failed to create appointment", "error", err)
		return nil, apperrors.Internal("Failed to book appointment", err)
	}

	// Notification failures never fail the booking.
	if err := s.notifier.Notify(ctx, appointment); err != nil {
		s.cfg.Log.Warn("Appointment notification failed",
			"id", appointment.ID,
			"error", err,
		)
	}

	s.cfg.Log.Info("Appointment created successfully",
		"id", appointment.ID,
		"patient", appointment.PatientName,
		"treatment", appointment.Treatment,
		"date", appointment.Date,
		"time_slot", appointment.TimeSlot,
	)
	return appointment, nil
}

func (s *appointmentService) List(ctx context.Context, query model.ListQuery) ([]*model.Appointment, error) {
	filter := repository.ListFilter{}

	if query.Treatment != "" {
		treatment := model.Treatment(query.Treatment)
		if !treatment.Valid() {
			return nil, apperrors.InvalidInput("Invalid treatment type")
		}
		filter.Treatment = treatment
	}

	if query.Date != "" {
		day, err := parseDay(query.Date)
		if err != nil {
			return nil, apperrors.InvalidInput("Invalid date format")
		}
		nextDay := day.AddDate(0, 0, 1)
		filter.DateFrom = &day
		filter.DateTo = &nextDay
	}

	if query.Status != "" {
		status := model.Status(query.Status)
		if !status.Valid() {
			return nil, apperrors.InvalidInput("Invalid status type")
		}
		filter.Status = status
	}

	sortField, ok := sortFields[query.SortBy]
	if !ok {
		return nil, apperrors.InvalidInput("Invalid sort field. Use one of: date, patientName, treatment, status")
	}
	filter.SortField = sortField

	switch query.SortOrder {
	case "", "asc":
		filter.SortAsc = true
	case "desc":
		filter.SortAsc = false
	default:
		return nil, apperrors.InvalidInput("Invalid sort order. Use 'asc' or 'desc'")
	}

	appointments, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list appointments", "error", err)
		return nil, apperrors.Internal("Failed to fetch appointments", err)
	}

	return appointments, nil
}

func (s *appointmentService) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		// Malformed ids read as not-found: the admin panel only ever holds
		// ids it got from the API, so anything else is a dead link.
		if errors.Is(err, appointmenterrors.ErrNotFound) || errors.Is(err, appointmenterrors.ErrInvalidID) {
			return nil, apperrors.NotFound("Appointment")
		}
		return nil, apperrors.Internal("Failed to fetch appointment", err)
	}

	return appointment, nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Appointment, error) {
	// Status is checked before any lookup so a bad value on a missing id
	// still reads as a parameter error.
	if !status.Valid() {
		return nil, apperrors.InvalidInput("Invalid status. Must be Pending, Confirmed, or Completed")
	}

	appointment, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, appointmenterrors.ErrNotFound) || errors.Is(err, appointmenterrors.ErrInvalidID) {
			return nil, apperrors.NotFound("Appointment")
		}
		s.cfg.Log.Error("Failed to update appointment status", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update appointment status", err)
	}

	s.cfg.Log.Info("Appointment status updated", "id", id, "status", status)
	return appointment, nil
}

// Stats runs six independent counts against the live collection. There is no
// snapshot across them; concurrent writes can skew individual counts.
func (s *appointmentService) Stats(ctx context.Context) (*model.Stats, error) {
	today := startOfDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)
	actionable := []model.Status{model.StatusPending, model.StatusConfirmed}

	stats := &model.Stats{}
	counts := []struct {
		dest  *int64
		count func(context.Context) (int64, error)
	}{
		{&stats.Total, s.repo.Count},
		{&stats.Today, func(ctx context.Context) (int64, error) {
			return s.repo.CountInDateRange(ctx, today, tomorrow)
		}},
		{&stats.Upcoming, func(ctx context.Context) (int64, error) {
			return s.repo.CountUpcoming(ctx, tomorrow, actionable)
		}},
		{&stats.Pending, func(ctx context.Context) (int64, error) {
			return s.repo.CountByStatus(ctx, model.StatusPending)
		}},
		{&stats.Confirmed, func(ctx context.Context) (int64, error) {
			return s.repo.CountByStatus(ctx, model.StatusConfirmed)
		}},
		{&stats.Completed, func(ctx context.Context) (int64, error) {
			return s.repo.CountByStatus(ctx, model.StatusCompleted)
		}},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(counts))
	wg.Add(len(counts))

	for i, c := range counts {
		i, c := i, c
		go func() {
			defer wg.Done()
			n, err := c.count(ctx)
			if err != nil {
				errs[i] = err
				return
			}
			*c.dest = n
		}()
	}

	wg.Wait()
	for _, err := range errs {
		if err != nil {
			s.cfg.Log.Error("Failed to compute appointment stats", "error", err)
			return nil, apperrors.Internal("Failed to fetch appointment stats", err)
		}
	}

	return stats, nil
}

var sortFields = map[string]string{
	"":            "date",
	"date":        "date",
	"patientName": "patientName",
	"treatment":   "treatment",
	"status":      "status",
}

// parseDay accepts the booking form's ISO date (with or without a time part)
// and truncates it to local midnight, the day-granularity the store keeps.
func parseDay(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return startOfDay(t.Local()), nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
