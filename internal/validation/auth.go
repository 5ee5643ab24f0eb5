package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Varun5711/mealcounter/internal/models/user"
)

const (
	MinNameLength     = 2
	MaxNameLength     = 50
	MinPasswordLength = 8
)

var (
	ErrFirstNameRequired = errors.New("first name is required")
	ErrFirstNameTooShort = errors.New("first name must be at least 2 characters")
	ErrFirstNameTooLong  = errors.New("first name must not exceed 50 characters")
	ErrLastNameRequired  = errors.New("last name is required")
	ErrLastNameTooShort  = errors.New("last name must be at least 2 characters")
	ErrLastNameTooLong   = errors.New("last name must not exceed 50 characters")
	ErrEmailRequired     = errors.New("email is required")
	ErrEmailInvalid      = errors.New("invalid email address")
	ErrPasswordRequired  = errors.New("password is required")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrPasswordNoUpper   = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLower   = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoDigit   = errors.New("password must contain at least one number")
	ErrPasswordMismatch  = errors.New("passwords do not match")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegistration checks a sign-up form. confirmPassword must repeat
// req.Password exactly.
func ValidateRegistration(req user.RegisterRequest, confirmPassword string) error {
	if err := validateName(req.FirstName, ErrFirstNameRequired, ErrFirstNameTooShort, ErrFirstNameTooLong); err != nil {
		return fieldErr("firstName", err)
	}
	if err := validateName(req.LastName, ErrLastNameRequired, ErrLastNameTooShort, ErrLastNameTooLong); err != nil {
		return fieldErr("lastName", err)
	}
	if err := validateEmail(req.Email); err != nil {
		return fieldErr("email", err)
	}
	if err := validatePassword(req.Password); err != nil {
		return fieldErr("password", err)
	}
	if req.Password != confirmPassword {
		return fieldErr("confirmPassword", ErrPasswordMismatch)
	}
	return nil
}

// ValidateLogin only requires a well-formed email and a non-empty password;
// strength rules apply at registration.
func ValidateLogin(req user.LoginRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return fieldErr("email", err)
	}
	if req.Password == "" {
		return fieldErr("password", ErrPasswordRequired)
	}
	return nil
}

func validateName(name string, required, tooShort, tooLong error) error {
	n := utf8.RuneCountInString(name)
	switch {
	case n == 0:
		return required
	case n < MinNameLength:
		return tooShort
	case n > MaxNameLength:
		return tooLong
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailRegex.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return ErrPasswordNoUpper
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		return ErrPasswordNoLower
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return ErrPasswordNoDigit
	}
	return nil
}
