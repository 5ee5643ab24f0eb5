package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Varun5711/mealcounter/internal/models"
	"github.com/Varun5711/mealcounter/internal/nutrition"
	"github.com/Varun5711/mealcounter/internal/store"
)

const (
	menuSearch = iota
	menuHistory
	menuLogout
)

type menuItem struct {
	label string
	hint  string
}

type MenuModel struct {
	cursor   int
	selected int
	items    []menuItem
	meals    *store.Meals
	now      func() time.Time
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func NewMenuModel(meals *store.Meals) *MenuModel {
	return &MenuModel{
		selected: -1,
		meals:    meals,
		now:      time.Now,
		items: []menuItem{
			menuSearch:  {label: "Look Up a Dish", hint: "calories per dish and serving"},
			menuHistory: {label: "Meal History", hint: "everything you have logged"},
			menuLogout:  {label: "Log Out", hint: "sign out on this device"},
		},
	}
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := key.String(); s {
	case "up", "k":
		m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % len(m.items)
	case "enter":
		m.selected = m.cursor
	case "1", "2", "3":
		m.cursor = int(s[0] - '1')
		m.selected = m.cursor
	}
	return m, nil
}

// today adds up the entries logged on the current calendar day.
func (m *MenuModel) today(history []models.MealEntry) nutrition.Totals {
	now := m.now()
	y, mo, d := now.Date()
	var todays []models.MealEntry
	for _, e := range history {
		ey, emo, ed := e.Time().In(now.Location()).Date()
		if ey == y && emo == mo && ed == d {
			todays = append(todays, e)
		}
	}
	return nutrition.Summarize(todays)
}

func (m *MenuModel) label(i int, history []models.MealEntry) string {
	item := m.items[i]
	if i == menuHistory && len(history) > 0 {
		return fmt.Sprintf("%s (%d)", item.label, len(history))
	}
	return item.label
}

func (m *MenuModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("🥗 MEAL COUNTER") + " " + SubtitleStyle.Render("Calories at a glance")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(1).Render(header))
	b.WriteString("\n\n")

	history := m.meals.History()
	if today := m.today(history); today.Meals > 0 {
		badge := fmt.Sprintf("Today: %d meal(s)  •  ", today.Meals) +
			CaloriesStyle.Render(fmt.Sprintf("%.1f kcal", nutrition.FormatCalories(today.Calories))) +
			"  •  " + macroLine(today.Macros)
		b.WriteString(centered(badge))
	} else {
		b.WriteString(centered(InfoStyle.Render("Nothing logged today yet")))
	}
	b.WriteString("\n")

	rows := make([]string, 0, len(m.items))
	for i := range m.items {
		style, cursor := ItemStyle, "  "
		if i == m.cursor {
			style, cursor = SelectedItemStyle, "> "
		}
		line := style.Render(fmt.Sprintf("%s%d. %s", cursor, i+1, m.label(i, history)))
		if i == m.cursor {
			line += "  " + InfoStyle.Render(m.items[i].hint)
		}
		rows = append(rows, line)
	}
	b.WriteString(centered(BoxStyle.Width(64).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))))
	b.WriteString("\n")

	if len(history) > 0 {
		last := history[0]
		b.WriteString(centered(InfoStyle.Render(fmt.Sprintf("Last: %s x%g, %s",
			last.DishName, last.Servings, nutrition.FormatDate(last.Time(), m.now())))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render("↑/↓ navigate  •  1-3 jump  •  enter select  •  q quit")))

	return b.String()
}
