package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Varun5711/mealcounter/internal/models"
	"github.com/Varun5711/mealcounter/internal/nutrition"
	"github.com/Varun5711/mealcounter/internal/service"
	"github.com/Varun5711/mealcounter/internal/store"
	"github.com/Varun5711/mealcounter/internal/suggest"
	"github.com/Varun5711/mealcounter/internal/validation"
)

type searchDoneMsg struct {
	err error
}

const (
	searchDish = iota
	searchServings
)

// SearchModel is the lookup form. Loading, error and the latest result are
// read from the meal store, which the meal service keeps up to date.
type SearchModel struct {
	fields       []field
	focusedInput int
	suggestions  []string
	suggestIdx   int
	limit        int
	inputErr     error
	meals        *store.Meals
	svc          *service.MealService
}

func NewSearchModel(svc *service.MealService, meals *store.Meals, suggestLimit int) *SearchModel {
	m := &SearchModel{
		fields: []field{
			searchDish:     {label: "Dish"},
			searchServings: {label: "Servings", value: "1"},
		},
		limit: suggestLimit,
		meals: meals,
		svc:   svc,
	}
	m.refreshSuggestions()
	return m
}

func (m *SearchModel) Init() tea.Cmd {
	return nil
}

func searchCmd(svc *service.MealService, req models.LookupRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.Search(context.Background(), req)
		return searchDoneMsg{err: err}
	}
}

func (m *SearchModel) refreshSuggestions() {
	m.suggestions = suggest.GetSuggestedDishes(m.fields[searchDish].value, m.limit)
	m.suggestIdx = -1
}

func (m *SearchModel) request() (models.LookupRequest, error) {
	raw := strings.TrimSpace(m.fields[searchServings].value)
	servings, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.LookupRequest{}, &validation.Error{Field: "servings", Err: validation.ErrServingsInvalid}
	}
	return models.LookupRequest{DishName: m.fields[searchDish].value, Servings: servings}, nil
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		// Lookup failures live in the store's error slot; only input
		// problems are kept here.
		m.inputErr = nil
		if validation.IsValidation(msg.err) {
			m.inputErr = msg.err
		}
		return m, nil

	case tea.KeyMsg:
		if m.meals.IsLoading() {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab":
			m.focusedInput = (m.focusedInput + 1) % len(m.fields)
		case "down":
			if m.focusedInput == searchDish && m.suggestIdx < len(m.suggestions)-1 {
				m.suggestIdx++
			}
		case "up":
			if m.focusedInput == searchDish && m.suggestIdx >= 0 {
				m.suggestIdx--
			}
		case "enter":
			if m.focusedInput == searchDish && m.suggestIdx >= 0 {
				m.fields[searchDish].value = m.suggestions[m.suggestIdx]
				m.refreshSuggestions()
				m.focusedInput = searchServings
				return m, nil
			}

			req, err := m.request()
			if err != nil {
				m.inputErr = err
				return m, nil
			}
			m.inputErr = nil
			return m, searchCmd(m.svc, req)
		case "ctrl+l":
			m.fields[searchDish].value = ""
			m.fields[searchServings].value = "1"
			m.inputErr = nil
			m.meals.ClearError()
			m.refreshSuggestions()
		default:
			if m.fields[m.focusedInput].handleKey(msg) && m.focusedInput == searchDish {
				m.refreshSuggestions()
			}
		}
	}
	return m, nil
}

func (m *SearchModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("🔍 LOOK UP A DISH")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(1).MarginBottom(1).Render(header))
	b.WriteString("\n\n")

	b.WriteString(m.fields[searchDish].view(m.focusedInput == searchDish))
	b.WriteString("\n")

	if m.focusedInput == searchDish && len(m.suggestions) > 0 {
		items := make([]string, 0, len(m.suggestions))
		for i, s := range m.suggestions {
			if i == m.suggestIdx {
				items = append(items, SelectedItemStyle.Render("> "+s))
			} else {
				items = append(items, ItemStyle.Render("  "+s))
			}
		}
		b.WriteString(centered(lipgloss.NewStyle().Width(50).Render(lipgloss.JoinVertical(lipgloss.Left, items...))))
		b.WriteString("\n")
	}

	b.WriteString(m.fields[searchServings].view(m.focusedInput == searchServings))
	b.WriteString("\n\n")

	switch {
	case m.meals.IsLoading():
		b.WriteString(centered(InfoStyle.Render("⏳ Fetching calories...")))
	case m.inputErr != nil:
		b.WriteString(centered(ErrorStyle.Render("❌ " + errorText(m.inputErr))))
	case m.meals.Error() != nil:
		b.WriteString(centered(ErrorStyle.Render("❌ " + *m.meals.Error())))
	default:
		if r := m.meals.CurrentResult(); r != nil {
			b.WriteString(resultCard(*r))
		}
	}
	b.WriteString("\n\n")

	help := InfoStyle.Render("tab switch  •  ↑/↓ suggestions  •  enter look up  •  ctrl+l clear  •  esc menu")
	b.WriteString(centered(help))

	return BoxStyle.Width(76).Render(b.String())
}

func resultCard(r models.LookupResult) string {
	macros := nutrition.CalculateMacros(r.CaloriesPerServing, r.Servings)

	title := SuccessStyle.Render(r.DishName)
	total := CaloriesStyle.Render(fmt.Sprintf("%.1f kcal", nutrition.FormatCalories(r.TotalCalories)))
	detail := lipgloss.NewStyle().Foreground(Muted).Render(
		fmt.Sprintf("%g serving(s) × %.1f kcal  •  %s", r.Servings, nutrition.FormatCalories(r.CaloriesPerServing), r.Source))

	card := lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+total,
		detail,
		macroLine(macros),
	)

	return centered(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(1, 2).
		Width(60).
		Render(card))
}

func macroLine(m models.MacroEstimate) string {
	return lipgloss.NewStyle().Foreground(ProteinColor).Render(fmt.Sprintf("Protein %.1fg", m.Protein)) + "  " +
		lipgloss.NewStyle().Foreground(CarbsColor).Render(fmt.Sprintf("Carbs %.1fg", m.Carbs)) + "  " +
		lipgloss.NewStyle().Foreground(FatColor).Render(fmt.Sprintf("Fat %.1fg", m.Fat))
}

// sessionLost reports whether a search failed because the credential is gone.
func sessionLost(err error) bool {
	return errors.Is(err, service.ErrNoSession)
}
