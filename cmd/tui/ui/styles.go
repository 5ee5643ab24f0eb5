package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Primary   = lipgloss.Color("#3FB950") // leaf green
	Secondary = lipgloss.Color("#7EE787") // light green
	Accent    = lipgloss.Color("#F0883E") // carrot
	Success   = lipgloss.Color("#56D364")
	Warning   = lipgloss.Color("#E3B341")
	Error     = lipgloss.Color("#FF7B72")
	Muted     = lipgloss.Color("#8B949E")
	Text      = lipgloss.Color("#E6EDF3")
	BgDark    = lipgloss.Color("#0D1117")
	BgLight   = lipgloss.Color("#161B22")

	// Macro colors, also used by the history cards.
	ProteinColor = lipgloss.Color("#79C0FF")
	CarbsColor   = lipgloss.Color("#E3B341")
	FatColor     = lipgloss.Color("#D2A8FF")

	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2).
			MarginTop(1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true).
				PaddingLeft(2)

	ItemStyle = lipgloss.NewStyle().
			Foreground(Text).
			PaddingLeft(2)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(Text).
				Border(lipgloss.NormalBorder()).
				BorderForeground(Accent).
				Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Width(20)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	CaloriesStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// centered renders s in the middle of the 80-column layout.
func centered(s string) string {
	return lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(s)
}
