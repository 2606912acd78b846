// Package boot shows a spinner while boot data loads and the fatal error
// screen if it cannot be loaded.
package boot

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwise/internal/appdata"
	"github.com/abhisek/careerwise/internal/screen"
	"github.com/abhisek/careerwise/internal/screens/flow"
	"github.com/abhisek/careerwise/internal/ui/layout"
	"github.com/abhisek/careerwise/internal/ui/theme"
)

// Loader is the part of *appdata.Loader the screen needs.
type Loader interface {
	Load(ctx context.Context) (*appdata.Bundle, error)
}

type loadedMsg struct {
	Bundle *appdata.Bundle
	Err    error
}

// BootScreen waits for the loader to settle.
type BootScreen struct {
	ctx     context.Context
	loader  Loader
	spinner spinner.Model
	err     error
}

var _ screen.Screen = (*BootScreen)(nil)
var _ screen.KeyHintProvider = (*BootScreen)(nil)

// New creates a BootScreen that loads with loader.
func New(ctx context.Context, loader Loader) *BootScreen {
	return &BootScreen{
		ctx:     ctx,
		loader:  loader,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary))),
	}
}

func (s *BootScreen) Title() string { return "" }

func (s *BootScreen) Init() tea.Cmd {
	ctx, loader := s.ctx, s.loader
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		b, err := loader.Load(ctx)
		return loadedMsg{Bundle: b, Err: err}
	})
}

func (s *BootScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.err = msg.Err
			return s, nil
		}
		b := msg.Bundle
		return s, func() tea.Msg { return flow.BootedMsg{Bundle: b} }

	case spinner.TickMsg:
		if s.err != nil {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Failed reports whether loading failed.
func (s *BootScreen) Failed() bool { return s.err != nil }

func (s *BootScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

func (s *BootScreen) View(width, height int) string {
	var content string
	if s.err != nil {
		content = theme.ErrorText.Render(s.err.Error())
	} else {
		content = s.spinner.View() + " " + theme.Body.Render("Loading CareerWise…")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
