package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Varun5711/mealcounter/internal/idgen"
	"github.com/Varun5711/mealcounter/internal/logger"
	"github.com/Varun5711/mealcounter/internal/models"
	"github.com/Varun5711/mealcounter/internal/storage"
	"github.com/Varun5711/mealcounter/internal/store"
)

func newMenuWithMeals(t *testing.T, at ...time.Time) *MenuModel {
	t.Helper()

	i := 0
	clock := func() time.Time {
		ts := at[i]
		i++
		return ts
	}

	ids, err := idgen.NewGenerator(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	meals, err := store.NewMeals(context.Background(), storage.NewMemory(), ids, logger.Nop(), store.WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	for range at {
		if _, err := meals.AddMealToHistory(models.LookupResult{
			DishName: "Pizza", Servings: 1, CaloriesPerServing: 285, TotalCalories: 285,
		}); err != nil {
			t.Fatal(err)
		}
	}
	return NewMenuModel(meals)
}

func TestMenu_Navigation(t *testing.T) {
	m := newMenuWithMeals(t)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != menuLogout {
		t.Errorf("expected up from the top to wrap to the last item, got %d", m.cursor)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != menuSearch {
		t.Errorf("expected down from the last item to wrap to the top, got %d", m.cursor)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	if m.selected != menuHistory {
		t.Errorf("expected 2 to select history, got %d", m.selected)
	}
}

func TestMenu_TodayBadge(t *testing.T) {
	now := time.Date(2026, 5, 2, 18, 0, 0, 0, time.UTC)
	m := newMenuWithMeals(t,
		now.AddDate(0, 0, -1),
		now.Add(-6*time.Hour),
		now.Add(-time.Hour),
	)
	m.now = func() time.Time { return now }

	today := m.today(m.meals.History())
	if today.Meals != 2 || today.Calories != 570 {
		t.Errorf("expected 2 meals and 570 kcal today, got %+v", today)
	}

	view := m.View()
	for _, want := range []string{"Today: 2 meal(s)", "570.0 kcal", "Meal History (3)", "Last: Pizza x1"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in menu view", want)
		}
	}
}

func TestMenu_EmptyHistory(t *testing.T) {
	m := newMenuWithMeals(t)

	view := m.View()
	if !strings.Contains(view, "Nothing logged today yet") {
		t.Error("expected empty-day notice")
	}
	if strings.Contains(view, "Meal History (") || strings.Contains(view, "Last:") {
		t.Error("expected no history count or last entry without meals")
	}
}
