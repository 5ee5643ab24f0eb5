package ui

import (
	"errors"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Varun5711/mealcounter/internal/gateway"
	"github.com/Varun5711/mealcounter/internal/validation"
)

// field is a single-line text input edited by raw key messages.
type field struct {
	label string
	value string
	mask  bool
}

// handleKey applies an editing key and reports whether it was consumed.
func (f *field) handleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(f.value); size > 0 {
			f.value = f.value[:len(f.value)-size]
		}
		return true
	case tea.KeySpace:
		f.value += " "
		return true
	case tea.KeyRunes:
		f.value += string(msg.Runes)
		return true
	}
	return false
}

func (f *field) view(focused bool) string {
	style := InputStyle
	if focused {
		style = FocusedInputStyle
	}

	shown := f.value
	if f.mask {
		shown = strings.Repeat("•", utf8.RuneCountInString(f.value))
	}

	label := LabelStyle.Width(18).Render(f.label + ":")
	return centered(lipgloss.JoinHorizontal(lipgloss.Left, label, style.Width(50).Render(shown)))
}

// errorText picks the message a user should see for err.
func errorText(err error) string {
	var ve *validation.Error
	if errors.As(err, &ve) {
		return ve.Message()
	}
	if ge, ok := gateway.AsError(err); ok {
		return ge.Message
	}
	return err.Error()
}
