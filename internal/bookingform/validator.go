package bookingform

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"deskview/pkg/logger"
	"deskview/pkg/model"

	"github.com/go-playground/validator/v10"
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

type RequestValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewRequestValidator(log *logger.Logger) *RequestValidator {
	v := validator.New()

	if err := v.RegisterValidation("slot_within_day", validateSlotWithinDay); err != nil {
		log.Fatal("Failed to register 'slot_within_day' validator",
			"error", err,
		)
	}

	return &RequestValidator{
		validate: v,
		logger:   log,
	}
}

// Bookable slots start no earlier than 09:00 and end no later than 18:00.
func validateSlotWithinDay(fl validator.FieldLevel) bool {
	t, err := time.Parse("15:04", fl.Field().String())
	if err != nil {
		return false
	}
	return t.Hour() >= dayStartHour && (t.Hour() < dayEndHour || (t.Hour() == dayEndHour && t.Minute() == 0))
}

func (v *RequestValidator) Validate(req *model.BookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	start, errStart := time.Parse("15:04", req.SlotStart)
	end, errEnd := time.Parse("15:04", req.SlotEnd)
	if errStart == nil && errEnd == nil && !end.After(start) {
		return ValidationErrors{
			ValidationError{
				Field:   "SlotEnd",
				Message: "slot_end must be after slot_start",
			},
		}
	}

	return nil
}

func (v *RequestValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "required_if":
			message = fmt.Sprintf("%s is required for this room type", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "datetime":
			message = fmt.Sprintf("%s must match the format %s", err.Field(), err.Param())
		case "slot_within_day":
			message = fmt.Sprintf("%s must fall within working hours", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
