// Package theme holds the palette and shared styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Navy surfaces, blue for focus, teal for progress, amber for
// career highlights.
var (
	Primary   = lipgloss.Color("#3B82F6")
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F59E0B")
	Success   = lipgloss.Color("#22C55E")
	Danger    = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Label    = lipgloss.NewStyle().Foreground(TextDim)
)

// Card frames forms and result panels.
var Card = lipgloss.NewStyle().
	Background(BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)

// Form state.
var (
	Selected = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Focused  = lipgloss.NewStyle().Foreground(Secondary).Bold(true)

	// Notice is used for confirmations such as a created account.
	Notice    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	ErrorText = lipgloss.NewStyle().Foreground(Danger).Bold(true)
)

var (
	StepDone    = lipgloss.NewStyle().Background(Secondary)
	StepPending = lipgloss.NewStyle().Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
