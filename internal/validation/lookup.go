package validation

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/Varun5711/mealcounter/internal/models"
)

const (
	MaxDishNameLength = 100
	MinServings       = 0.1
	MaxServings       = 100
)

var (
	ErrDishNameRequired = errors.New("dish name is required")
	ErrDishNameTooLong  = errors.New("dish name must not exceed 100 characters")
	ErrServingsInvalid  = errors.New("servings must be a number")
	ErrServingsTooLow   = errors.New("servings must be at least 0.1")
	ErrServingsTooHigh  = errors.New("servings must not exceed 100")
)

// ValidateLookup checks a lookup before it is sent: a 1-100 character dish
// name (surrounding whitespace ignored) and 0.1-100 servings.
func ValidateLookup(req models.LookupRequest) error {
	name := strings.TrimSpace(req.DishName)

	if name == "" {
		return fieldErr("dish_name", ErrDishNameRequired)
	}
	if utf8.RuneCountInString(name) > MaxDishNameLength {
		return fieldErr("dish_name", ErrDishNameTooLong)
	}

	if math.IsNaN(req.Servings) || math.IsInf(req.Servings, 0) {
		return fieldErr("servings", ErrServingsInvalid)
	}
	if req.Servings < MinServings {
		return fieldErr("servings", ErrServingsTooLow)
	}
	if req.Servings > MaxServings {
		return fieldErr("servings", ErrServingsTooHigh)
	}

	return nil
}
