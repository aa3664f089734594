package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	appointmenterrors "medibook/internal/appointments/errors"
	"medibook/pkg/config"
	"medibook/pkg/model"
)

const (
	CollectionName = "bookings"
)

// ListFilter is the already-validated admin listing filter. Zero-value
// fields are left out of the query.
type ListFilter struct {
	Treatment model.Treatment
	Status    model.Status
	DateFrom  *time.Time
	DateTo    *time.Time
	SortField string
	SortAsc   bool
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	FindByID(ctx context.Context, id string) (*model.Appointment, error)
	FindBySlot(ctx context.Context, patientName string, date time.Time, slot model.TimeSlot) (*model.Appointment, error)
	Find(ctx context.Context, filter ListFilter) ([]*model.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Appointment, error)
	Count(ctx context.Context) (int64, error)
	CountInDateRange(ctx context.Context, from, to time.Time) (int64, error)
	CountUpcoming(ctx context.Context, from time.Time, statuses []model.Status) (int64, error)
	CountByStatus(ctx context.Context, status model.Status) (int64, error)
}

type mongoAppointmentRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoAppointmentRepository(cfg *config.Config) AppointmentRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoAppointmentRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// withTimeout bounds a store call with the configured operation timeout,
// keeping a shorter caller deadline when one is already set.
func (r *mongoAppointmentRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoAppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, appointment)
	if err != nil {
		// The migration puts a unique index on (patientName, date, timeSlot),
		// which closes the window the advisory duplicate check leaves open.
		if mongo.IsDuplicateKeyError(err) {
			return appointmenterrors.ErrDuplicateSlot
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		appointment.ID = oid.Hex()
	}
	return nil
}

func (r *mongoAppointmentRepository) FindByID(ctx context.Context, id string) (*model.Appointment, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", appointmenterrors.ErrInvalidID, id)
	}

	var appointment model.Appointment
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appointmenterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find appointment: %w", err)
	}

	return &appointment, nil
}

// FindBySlot looks up an exact (patientName, date, timeSlot) triple. This
// backs the advisory duplicate check; it is not atomic with the insert that
// follows it.
func (r *mongoAppointmentRepository) FindBySlot(ctx context.Context, patientName string, date time.Time, slot model.TimeSlot) (*model.Appointment, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"patientName": patientName,
		"date":        date,
		"timeSlot":    slot,
	}

	var appointment model.Appointment
	err := r.collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appointmenterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find appointment by slot: %w", err)
	}

	return &appointment, nil
}

func (r *mongoAppointmentRepository) Find(ctx context.Context, filter ListFilter) ([]*model.Appointment, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Treatment != "" {
		query["treatment"] = filter.Treatment
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.DateFrom != nil || filter.DateTo != nil {
		dateQuery := bson.M{}
		if filter.DateFrom != nil {
			dateQuery["$gte"] = *filter.DateFrom
		}
		if filter.DateTo != nil {
			dateQuery["$lt"] = *filter.DateTo
		}
		query["date"] = dateQuery
	}

	order := 1
	if !filter.SortAsc {
		order = -1
	}
	sortField := filter.SortField
	if sortField == "" {
		sortField = "date"
	}

	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: order}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []*model.Appointment{}
	if err = cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}

	return appointments, nil
}

func (r *mongoAppointmentRepository) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Appointment, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", appointmenterrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC().Truncate(time.Millisecond),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment model.Appointment
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appointmenterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}

	return &appointment, nil
}

func (r *mongoAppointmentRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

func (r *mongoAppointmentRepository) CountInDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	return r.count(ctx, bson.M{
		"date": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *mongoAppointmentRepository) CountUpcoming(ctx context.Context, from time.Time, statuses []model.Status) (int64, error) {
	return r.count(ctx, bson.M{
		"date":   bson.M{"$gte": from},
		"status": bson.M{"$in": statuses},
	})
}

func (r *mongoAppointmentRepository) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	return r.count(ctx, bson.M{"status": status})
}

func (r *mongoAppointmentRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}
