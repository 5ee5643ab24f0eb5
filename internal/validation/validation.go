// Package validation rejects malformed input before anything is sent to the
// calorie service.
package validation

import (
	"errors"
	"fmt"
)

// Error reports which field failed and why. Err is one of the package's
// sentinel errors, so callers can match with errors.Is.
type Error struct {
	Field string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the user-facing text without the field prefix.
func (e *Error) Message() string {
	if msg, ok := messages[e.Err]; ok {
		return msg
	}
	return e.Err.Error()
}

var messages = map[error]string{
	ErrDishNameRequired:  "Dish name is required",
	ErrDishNameTooLong:   "Dish name must not exceed 100 characters",
	ErrServingsInvalid:   "Servings must be a number",
	ErrServingsTooLow:    "Servings must be at least 0.1",
	ErrServingsTooHigh:   "Servings must not exceed 100",
	ErrFirstNameRequired: "First name is required",
	ErrFirstNameTooShort: "First name must be at least 2 characters",
	ErrFirstNameTooLong:  "First name must not exceed 50 characters",
	ErrLastNameRequired:  "Last name is required",
	ErrLastNameTooShort:  "Last name must be at least 2 characters",
	ErrLastNameTooLong:   "Last name must not exceed 50 characters",
	ErrEmailRequired:     "Email is required",
	ErrEmailInvalid:      "Please enter a valid email address",
	ErrPasswordRequired:  "Password is required",
	ErrPasswordTooShort:  "Password must be at least 8 characters",
	ErrPasswordNoUpper:   "Password must contain at least one uppercase letter",
	ErrPasswordNoLower:   "Password must contain at least one lowercase letter",
	ErrPasswordNoDigit:   "Password must contain at least one number",
	ErrPasswordMismatch:  "Passwords do not match",
}

func fieldErr(field string, err error) error {
	return &Error{Field: field, Err: err}
}

// IsValidation reports whether err came from this package.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
