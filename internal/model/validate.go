package model

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// NewValidate returns a validator with the naive date/time rules the
// entities use registered. Dates are "YYYY-MM-DD" real calendar dates,
// clock values are 24-hour "HH:MM"; neither carries a timezone.
func NewValidate() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return IsValidClock(fl.Field().String())
	})
	return v
}

// IsValidDate reports whether s is a real "YYYY-MM-DD" calendar date.
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil && len(s) == 10
}

// IsValidClock reports whether s is a 24-hour "HH:MM" clock value.
func IsValidClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil && len(s) == 5
}
