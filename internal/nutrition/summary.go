package nutrition

import "github.com/Varun5711/mealcounter/internal/models"

type Totals struct {
	Meals    int
	Calories float64
	Macros   models.MacroEstimate
}

// Summarize adds up the trusted total calories and the stored macro
// estimates of the given entries.
func Summarize(entries []models.MealEntry) Totals {
	var t Totals
	for _, e := range entries {
		t.Meals++
		t.Calories += e.TotalCalories
		t.Macros.Protein += e.Macros.Protein
		t.Macros.Carbs += e.Macros.Carbs
		t.Macros.Fat += e.Macros.Fat
	}

	t.Calories = round1(t.Calories)
	t.Macros.Protein = round1(t.Macros.Protein)
	t.Macros.Carbs = round1(t.Macros.Carbs)
	t.Macros.Fat = round1(t.Macros.Fat)
	return t
}
