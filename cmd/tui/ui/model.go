package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Varun5711/mealcounter/internal/models/user"
	"github.com/Varun5711/mealcounter/internal/service"
	"github.com/Varun5711/mealcounter/internal/store"
)

type View int

const (
	LoginView View = iota
	SignupView
	MenuView
	SearchView
	HistoryView
)

type Deps struct {
	Auth         *service.AuthService
	Meals        *service.MealService
	MealStore    *store.Meals
	SuggestLimit int
}

type Model struct {
	currentView View
	login       *LoginModel
	signup      *SignupModel
	menu        *MenuModel
	search      *SearchModel
	history     *HistoryModel
	auth        *service.AuthService
	width       int
	height      int
	err         error

	profile *user.Profile
}

func NewModel(deps Deps) Model {
	m := Model{
		currentView: LoginView,
		login:       NewLoginModel(deps.Auth),
		signup:      NewSignupModel(deps.Auth),
		menu:        NewMenuModel(deps.MealStore),
		search:      NewSearchModel(deps.Meals, deps.MealStore, deps.SuggestLimit),
		history:     NewHistoryModel(deps.Meals, deps.MealStore),
		auth:        deps.Auth,
	}

	// A persisted session skips the login screen.
	if deps.Auth.RequireAuth() == nil {
		m.profile = deps.Auth.CurrentUser()
		m.currentView = MenuView
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case authSuccessMsg:
		m.login.reset()
		m.signup.reset()
		m.profile = msg.profile
		m.err = nil
		m.currentView = MenuView
		return m, nil

	case searchDoneMsg:
		updated, cmd := m.search.Update(msg)
		m.search = updated.(*SearchModel)
		if sessionLost(msg.err) {
			m.profile = nil
			m.currentView = LoginView
		}
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.currentView == MenuView {
				return m, tea.Quit
			}

		case "esc":
			if m.currentView == SearchView || m.currentView == HistoryView {
				m.currentView = MenuView
				return m, nil
			}

		case "ctrl+s":
			if m.currentView == LoginView {
				m.currentView = SignupView
				return m, nil
			} else if m.currentView == SignupView {
				m.currentView = LoginView
				return m, nil
			}
		}
	}

	switch m.currentView {
	case LoginView:
		updatedLogin, cmd := m.login.Update(msg)
		m.login = updatedLogin.(*LoginModel)
		return m, cmd

	case SignupView:
		updatedSignup, cmd := m.signup.Update(msg)
		m.signup = updatedSignup.(*SignupModel)
		return m, cmd

	case MenuView:
		updatedMenu, cmd := m.menu.Update(msg)
		m.menu = updatedMenu.(*MenuModel)
		if m.menu.selected != -1 {
			switch m.menu.selected {
			case menuSearch:
				m.currentView = SearchView
			case menuHistory:
				m.currentView = HistoryView
				m.history.cursor = 0
			case menuLogout:
				m.err = m.auth.Logout()
				m.profile = nil
				m.currentView = LoginView
			}
			m.menu.selected = -1
		}
		return m, cmd

	case SearchView:
		updatedSearch, cmd := m.search.Update(msg)
		m.search = updatedSearch.(*SearchModel)
		return m, cmd

	case HistoryView:
		updatedHistory, cmd := m.history.Update(msg)
		m.history = updatedHistory.(*HistoryModel)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	var statusBar string
	if m.profile != nil && m.currentView != LoginView && m.currentView != SignupView {
		userInfo := lipgloss.NewStyle().
			Foreground(Success).
			Render("👤 " + m.profile.FirstName)

		emailInfo := lipgloss.NewStyle().
			Foreground(Muted).
			Render(" (" + m.profile.Email + ")")

		statusBar = lipgloss.NewStyle().
			Width(80).
			Align(lipgloss.Left).
			Background(BgDark).
			Padding(0, 2).
			Render(userInfo + emailInfo)
	}

	var mainContent string
	switch m.currentView {
	case LoginView:
		mainContent = m.login.View()
	case SignupView:
		mainContent = m.signup.View()
	case MenuView:
		mainContent = m.menu.View()
	case SearchView:
		mainContent = m.search.View()
	case HistoryView:
		mainContent = m.history.View()
	}

	if m.err != nil {
		mainContent = lipgloss.JoinVertical(lipgloss.Left, mainContent, ErrorStyle.Render("❌ "+errorText(m.err)))
	}

	if statusBar != "" {
		return lipgloss.JoinVertical(lipgloss.Left, statusBar, "\n", mainContent)
	}
	return mainContent
}
