// Package screen defines what every TUI screen implements.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerwise/internal/ui/layout"
)

// Screen is one page of the wizard. The app draws the header and footer
// around whatever View returns.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens with focused text input. While
// CapturesInput reports true the app does not treat printable keys as
// shortcuts.
type InputCapturer interface {
	CapturesInput() bool
}

// Hints returns s's own footer hints and whether it provides any.
func Hints(s Screen) ([]layout.KeyHint, bool) {
	p, ok := s.(KeyHintProvider)
	if !ok {
		return nil, false
	}
	return p.KeyHints(), true
}

// CapturesInput reports whether s currently owns printable keys. A nil
// screen captures nothing.
func CapturesInput(s Screen) bool {
	c, ok := s.(InputCapturer)
	return ok && c.CapturesInput()
}
