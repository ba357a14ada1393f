package booking

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"medspa/internal/model"
)

// BookingValidator checks the shape of booking requests before the
// orchestrator resolves them. Field errors are flattened into one
// voice-readable message.
type BookingValidator struct {
	validate *validator.Validate
}

func NewBookingValidator() *BookingValidator {
	return &BookingValidator{validate: model.NewValidate()}
}

func (v *BookingValidator) Validate(req BookingRequest) string {
	err := v.validate.Struct(req)
	if err == nil {
		return ""
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid booking request"
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return strings.Join(messages, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Date":
		return "Invalid date format. Use YYYY-MM-DD"
	case "Time":
		return "Invalid time format. Use HH:MM"
	case "ServiceName":
		return "Service name is required"
	case "ClientName":
		return "Client name is required"
	case "ClientPhone":
		return "Client phone number is required"
	case "ClientEmail":
		return "Client email is not a valid address"
	default:
		return "Invalid value for " + fe.Field()
	}
}
