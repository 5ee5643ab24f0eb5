package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Varun5711/mealcounter/internal/models/user"
	"github.com/Varun5711/mealcounter/internal/service"
)

type authSuccessMsg struct {
	profile *user.Profile
}

type loginErrorMsg struct {
	err error
}

type LoginModel struct {
	fields       []field
	focusedInput int
	loading      bool
	err          error
	auth         *service.AuthService
}

func NewLoginModel(auth *service.AuthService) *LoginModel {
	return &LoginModel{
		fields: []field{
			{label: "Email"},
			{label: "Password", mask: true},
		},
		auth: auth,
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return nil
}

func loginCmd(auth *service.AuthService, form service.LoginForm) tea.Cmd {
	return func() tea.Msg {
		profile, err := auth.Login(context.Background(), form)
		if err != nil {
			return loginErrorMsg{err: err}
		}
		return authSuccessMsg{profile: profile}
	}
}

func (m *LoginModel) reset() {
	for i := range m.fields {
		m.fields[i].value = ""
	}
	m.focusedInput = 0
	m.err = nil
	m.loading = false
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "tab", "down":
			m.focusedInput = (m.focusedInput + 1) % len(m.fields)
		case "shift+tab", "up":
			m.focusedInput = (m.focusedInput + len(m.fields) - 1) % len(m.fields)
		case "enter":
			m.loading = true
			m.err = nil
			return m, loginCmd(m.auth, service.LoginForm{
				Email:    m.fields[0].value,
				Password: m.fields[1].value,
			})
		case "ctrl+l":
			m.reset()
		default:
			m.fields[m.focusedInput].handleKey(msg)
		}
	}
	return m, nil
}

func (m *LoginModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render("🥗 LOG IN")

	subtitle := lipgloss.NewStyle().
		Foreground(Muted).
		Render("Welcome back! Sign in to keep counting.")

	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginBottom(3).Render(subtitle))
	b.WriteString("\n\n")

	for i := range m.fields {
		b.WriteString(m.fields[i].view(i == m.focusedInput))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(centered(InfoStyle.Render("🔄 Logging in...")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + errorText(m.err))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render("tab switch  •  enter log in  •  ctrl+l clear  •  ctrl+s sign up  •  ctrl+c quit")))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}
