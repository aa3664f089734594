package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"medibook/pkg/logger"
	"medibook/pkg/model"
)

var (
	// The booking form only accepts Indian contact numbers.
	phoneRegex = regexp.MustCompile(`^\+91[0-9]{10}$`)
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Messages returns the per-field messages for the error payload.
func (v ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return messages
}

type AppointmentValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewAppointmentValidator(log *logger.Logger) *AppointmentValidator {
	v := validator.New()

	customValidators := map[string]validator.Func{
		"in_phone":  validatePhone,
		"treatment": validateTreatment,
		"timeslot":  validateTimeSlot,
		"gender":    validateGender,
		"status":    validateStatus,
	}
	for tag, fn := range customValidators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatal("Failed to register custom validator", "tag", tag, "error", err)
		}
	}

	return &AppointmentValidator{
		validate: v,
		logger:   log,
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateTreatment(fl validator.FieldLevel) bool {
	return model.Treatment(fl.Field().String()).Valid()
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return model.TimeSlot(fl.Field().String()).Valid()
}

func validateGender(fl validator.FieldLevel) bool {
	return model.Gender(fl.Field().String()).Valid()
}

func validateStatus(fl validator.FieldLevel) bool {
	return model.Status(fl.Field().String()).Valid()
}

func (v *AppointmentValidator) Validate(appointment *model.Appointment) error {
	if err := v.validate.Struct(appointment); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return nil
}

func (v *AppointmentValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			if err.Field() == "Age" {
				message = "Age must be a positive number"
			} else {
				message = fmt.Sprintf("%s must be at least %s characters long", err.Field(), err.Param())
			}
		case "max":
			message = fmt.Sprintf("%s cannot exceed %s characters", err.Field(), err.Param())
		case "email":
			message = "Please enter a valid email address"
		case "in_phone":
			message = "Please enter a valid phone number (e.g., +919876543210)"
		case "treatment":
			message = fmt.Sprintf("Treatment must be one of: %s", joinTreatments())
		case "timeslot":
			message = fmt.Sprintf("TimeSlot must be one of: %s", joinTimeSlots())
		case "gender":
			message = fmt.Sprintf("Gender must be one of: %s", joinGenders())
		case "status":
			message = fmt.Sprintf("Status must be one of: %s", joinStatuses())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}

func joinTreatments() string {
	values := make([]string, len(model.Treatments))
	for i, t := range model.Treatments {
		values[i] = string(t)
	}
	return strings.Join(values, ", ")
}

func joinTimeSlots() string {
	values := make([]string, len(model.TimeSlots))
	for i, s := range model.TimeSlots {
		values[i] = string(s)
	}
	return strings.Join(values, ", ")
}

func joinGenders() string {
	values := make([]string, len(model.Genders))
	for i, g := range model.Genders {
		values[i] = string(g)
	}
	return strings.Join(values, ", ")
}

func joinStatuses() string {
	values := make([]string, len(model.Statuses))
	for i, s := range model.Statuses {
		values[i] = string(s)
	}
	return strings.Join(values, ", ")
}
