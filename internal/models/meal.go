package models

import "time"

type LookupRequest struct {
	DishName string  `json:"dish_name"`
	Servings float64 `json:"servings"`
}

// LookupResult is the service's answer for one dish. TotalCalories comes from
// the service and is never recomputed here.
type LookupResult struct {
	DishName           string  `json:"dish_name"`
	Servings           float64 `json:"servings"`
	CaloriesPerServing float64 `json:"calories_per_serving"`
	TotalCalories      float64 `json:"total_calories"`
	Source             string  `json:"source"`
}

// MacroEstimate is in grams and derived locally from calories, never
// received from the service.
type MacroEstimate struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

type MealEntry struct {
	ID                 string        `json:"id"`
	DishName           string        `json:"dish_name"`
	Servings           float64       `json:"servings"`
	CaloriesPerServing float64       `json:"calories_per_serving"`
	TotalCalories      float64       `json:"total_calories"`
	Timestamp          int64         `json:"timestamp"` // unix milliseconds
	Macros             MacroEstimate `json:"macros"`
}

// Time returns the capture time of the entry.
func (e MealEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

type ErrorResponse struct {
	Message string `json:"message"`
}
