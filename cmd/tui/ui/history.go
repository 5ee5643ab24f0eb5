package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Varun5711/mealcounter/internal/nutrition"
	"github.com/Varun5711/mealcounter/internal/service"
	"github.com/Varun5711/mealcounter/internal/store"
)

type HistoryModel struct {
	cursor       int
	confirmClear bool
	err          error
	meals        *store.Meals
	svc          *service.MealService
}

func NewHistoryModel(svc *service.MealService, meals *store.Meals) *HistoryModel {
	return &HistoryModel{
		meals: meals,
		svc:   svc,
	}
}

func (m *HistoryModel) Init() tea.Cmd {
	return nil
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	entries := m.meals.History()
	key := keyMsg.String()
	if key != "C" {
		m.confirmClear = false
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(entries)-1 {
			m.cursor++
		}
	case "d", "delete":
		if m.cursor < len(entries) {
			m.err = m.svc.Delete(entries[m.cursor].ID)
			if m.cursor >= len(entries)-1 && m.cursor > 0 {
				m.cursor--
			}
		}
	case "C":
		if !m.confirmClear {
			m.confirmClear = true
			return m, nil
		}
		m.confirmClear = false
		m.err = m.svc.Clear()
		m.cursor = 0
	}
	return m, nil
}

func (m *HistoryModel) View() string {
	var b strings.Builder
	entries := m.meals.History()
	now := time.Now()

	header := TitleStyle.Render("📖 MEAL HISTORY")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(1).MarginBottom(1).Render(header))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(Muted).
			Render("🍽  No meals yet. Look up a dish first!")
		b.WriteString(centered(empty))
		b.WriteString("\n")
	} else {
		totals := m.meals.Totals()
		summary := fmt.Sprintf("%d meal(s)  •  ", totals.Meals) +
			CaloriesStyle.Render(fmt.Sprintf("%.1f kcal", totals.Calories)) + "  •  " + macroLine(totals.Macros)
		b.WriteString(centered(summary))
		b.WriteString("\n\n")

		for i, e := range entries {
			border := Muted
			if i == m.cursor {
				border = Accent
			}

			line := lipgloss.JoinVertical(lipgloss.Left,
				SuccessStyle.Render(e.DishName)+"  "+CaloriesStyle.Render(fmt.Sprintf("%.1f kcal", nutrition.FormatCalories(e.TotalCalories))),
				lipgloss.NewStyle().Foreground(Muted).Render(fmt.Sprintf("%g serving(s)  •  %s", e.Servings, nutrition.FormatDate(e.Time(), now))),
				macroLine(e.Macros),
			)

			card := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(border).
				Padding(0, 2).
				Width(70).
				Render(line)
			b.WriteString(centered(card))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + errorText(m.err))))
		b.WriteString("\n")
	}
	if m.confirmClear {
		b.WriteString(centered(ErrorStyle.Render("Press C again to delete every meal")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render("↑/↓ navigate  •  d delete  •  C clear all  •  esc menu")))

	return BoxStyle.Width(76).Render(b.String())
}
