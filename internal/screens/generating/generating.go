// Package generating shows progress while recommendations are requested.
package generating

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwise/internal/loading"
	"github.com/abhisek/careerwise/internal/screen"
	"github.com/abhisek/careerwise/internal/screens/flow"
	"github.com/abhisek/careerwise/internal/ui/layout"
	"github.com/abhisek/careerwise/internal/ui/theme"
	"github.com/abhisek/careerwise/internal/wizard"
)

// GeneratingScreen renders the spinner and the current carousel message.
type GeneratingScreen struct {
	spinner spinner.Model
	frame   loading.Frame
}

var _ screen.Screen = (*GeneratingScreen)(nil)
var _ screen.KeyHintProvider = (*GeneratingScreen)(nil)

// New creates the screen showing the orchestrator's current frame.
func New(env flow.Env, _ wizard.Generating) *GeneratingScreen {
	return &GeneratingScreen{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary))),
		frame:   env.Wizard.LoadingFrame(),
	}
}

func (s *GeneratingScreen) Init() tea.Cmd { return s.spinner.Tick }

func (s *GeneratingScreen) Title() string { return "Generating" }

func (s *GeneratingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flow.FrameMsg:
		// Frames are delivered asynchronously; ones from an earlier run
		// or overtaken by a newer frame are dropped.
		if msg.Frame.After(s.frame) {
			s.frame = msg.Frame
		}
		return s, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Frame returns the frame being shown.
func (s *GeneratingScreen) Frame() loading.Frame { return s.frame }

func (s *GeneratingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+R", Description: "Start over"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *GeneratingScreen) View(width, height int) string {
	w := layout.ContentWidth(width)

	// Hidden frames keep their line so the layout does not jump.
	message := " "
	if s.frame.Visible {
		message = s.frame.Message
	}
	content := s.spinner.View() + " " + theme.Title.Render("Generating your career recommendations") + "\n\n" +
		lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Foreground(theme.TextDim).Render(message)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
