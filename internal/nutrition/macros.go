// Package nutrition holds the local, derived numbers shown next to a lookup:
// the fixed-ratio macro estimate, display rounding and history totals.
package nutrition

import (
	"math"

	"github.com/Varun5711/mealcounter/internal/models"
)

// Share of calories attributed to each macro and its energy density.
const (
	ProteinShare = 0.3
	CarbsShare   = 0.4
	FatShare     = 0.3

	ProteinKcalPerGram = 4.0
	CarbsKcalPerGram   = 4.0
	FatKcalPerGram     = 9.0
)

// CalculateMacros estimates grams of protein, carbs and fat for
// caloriesPerServing*servings, each rounded to one decimal.
func CalculateMacros(caloriesPerServing, servings float64) models.MacroEstimate {
	total := caloriesPerServing * servings

	return models.MacroEstimate{
		Protein: round1(total * ProteinShare / ProteinKcalPerGram),
		Carbs:   round1(total * CarbsShare / CarbsKcalPerGram),
		Fat:     round1(total * FatShare / FatKcalPerGram),
	}
}

// FormatCalories rounds a calorie figure to one decimal for display.
func FormatCalories(calories float64) float64 {
	return round1(calories)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
