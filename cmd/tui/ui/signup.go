package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Varun5711/mealcounter/internal/service"
)

type signupErrorMsg struct {
	err error
}

const (
	signupFirstName = iota
	signupLastName
	signupEmail
	signupPassword
	signupConfirm
)

type SignupModel struct {
	fields       []field
	focusedInput int
	loading      bool
	err          error
	auth         *service.AuthService
}

func NewSignupModel(auth *service.AuthService) *SignupModel {
	return &SignupModel{
		fields: []field{
			signupFirstName: {label: "First name"},
			signupLastName:  {label: "Last name"},
			signupEmail:     {label: "Email"},
			signupPassword:  {label: "Password", mask: true},
			signupConfirm:   {label: "Confirm password", mask: true},
		},
		auth: auth,
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return nil
}

func signupCmd(auth *service.AuthService, form service.RegisterForm) tea.Cmd {
	return func() tea.Msg {
		profile, err := auth.Register(context.Background(), form)
		if err != nil {
			return signupErrorMsg{err: err}
		}
		return authSuccessMsg{profile: profile}
	}
}

func (m *SignupModel) form() service.RegisterForm {
	return service.RegisterForm{
		FirstName:       m.fields[signupFirstName].value,
		LastName:        m.fields[signupLastName].value,
		Email:           m.fields[signupEmail].value,
		Password:        m.fields[signupPassword].value,
		ConfirmPassword: m.fields[signupConfirm].value,
	}
}

func (m *SignupModel) reset() {
	for i := range m.fields {
		m.fields[i].value = ""
	}
	m.focusedInput = 0
	m.err = nil
	m.loading = false
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signupErrorMsg:
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
			return m, signupCmd(m.auth, m.form())
		case "ctrl+l":
			m.reset()
		default:
			m.fields[m.focusedInput].handleKey(msg)
		}
	}
	return m, nil
}

func (m *SignupModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Success).
		Bold(true).
		Render("✨ SIGN UP")

	subtitle := lipgloss.NewStyle().
		Foreground(Muted).
		Render("Create an account to start tracking your meals.")

	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginBottom(2).Render(subtitle))
	b.WriteString("\n\n")

	for i := range m.fields {
		b.WriteString(m.fields[i].view(i == m.focusedInput))
		b.WriteString("\n")
	}
	b.WriteString(centered(InfoStyle.Render("(8+ characters with an uppercase letter, a lowercase letter and a number)")))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(centered(InfoStyle.Render("🔄 Creating account...")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + errorText(m.err))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render("tab switch  •  enter sign up  •  ctrl+l clear  •  ctrl+s log in  •  ctrl+c quit")))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}
