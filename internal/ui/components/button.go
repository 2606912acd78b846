package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwise/internal/ui/theme"
)

// Button is a styled, keyboard-selected button.
type Button struct {
	Label  string
	Active bool
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// ButtonRow renders buttons side by side with the one at selected active.
func ButtonRow(labels []string, selected int) string {
	var parts []string
	for i, l := range labels {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, Button{Label: l, Active: i == selected}.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
