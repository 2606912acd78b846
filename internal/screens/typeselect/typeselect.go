// Package typeselect is the first wizard step: choosing between studying
// and having completed education.
package typeselect

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/screen"
	"github.com/abhisek/careerwise/internal/screens/flow"
	"github.com/abhisek/careerwise/internal/ui/components"
	"github.com/abhisek/careerwise/internal/ui/layout"
	"github.com/abhisek/careerwise/internal/ui/theme"
)

// TypeSelectScreen offers the two user types.
type TypeSelectScreen struct {
	env  flow.Env
	menu components.Menu
	err  string
}

var _ screen.Screen = (*TypeSelectScreen)(nil)
var _ screen.KeyHintProvider = (*TypeSelectScreen)(nil)

// New creates the screen.
func New(env flow.Env) *TypeSelectScreen {
	s := &TypeSelectScreen{env: env}
	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label:       "I am currently studying",
			Description: "School, college or university",
			Action:      s.choose(profile.InEducation),
		},
		{
			Label:       "I have completed my education",
			Description: "Graduates and working professionals",
			Action:      s.choose(profile.CompletedEducation),
		},
	})
	return s
}

func (s *TypeSelectScreen) choose(t profile.UserType) func() tea.Cmd {
	return func() tea.Cmd {
		if err := s.env.Wizard.SelectType(t); err != nil {
			s.err = err.Error()
		}
		return nil
	}
}

func (s *TypeSelectScreen) Init() tea.Cmd { return nil }

func (s *TypeSelectScreen) Title() string { return "Welcome" }

func (s *TypeSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TypeSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *TypeSelectScreen) View(width, height int) string {
	content := theme.Title.Render("Find a career that fits you") + "\n" +
		theme.Subtitle.Render("Tell us where you are in your education to get started.") + "\n\n" +
		s.menu.View()
	if s.err != "" {
		content += "\n" + theme.ErrorText.Render(s.err)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
