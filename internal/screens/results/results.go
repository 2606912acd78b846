// Package results lists the recommended careers and shows each in detail.
package results

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/router"
	"github.com/abhisek/careerwise/internal/screen"
	"github.com/abhisek/careerwise/internal/screens/flow"
	"github.com/abhisek/careerwise/internal/ui/components"
	"github.com/abhisek/careerwise/internal/ui/layout"
	"github.com/abhisek/careerwise/internal/ui/theme"
	"github.com/abhisek/careerwise/internal/wizard"
)

// ResultsScreen is the final wizard step.
type ResultsScreen struct {
	env    flow.Env
	state  wizard.Results
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the list for st.
func New(env flow.Env, st wizard.Results) *ResultsScreen {
	s := &ResultsScreen{env: env, state: st}
	items := make([]components.MenuItem, 0, len(st.Recommendations))
	for _, rec := range st.Recommendations {
		items = append(items, components.MenuItem{
			Label:       rec.CareerTitle,
			Description: summary(rec.Description),
			Action:      open(rec),
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func open(rec profile.CareerRecommendation) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: NewDetail(rec)} }
	}
}

func (s *ResultsScreen) Init() tea.Cmd { return nil }

func (s *ResultsScreen) Title() string { return "Recommendations" }

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "r" {
		if err := s.env.Wizard.Reset(); err != nil {
			s.errMsg = err.Error()
		}
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "R", Description: "Start over"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) View(width, height int) string {
	content := theme.Title.Render("Your top career matches") + "\n" +
		theme.Subtitle.Render("Picked for "+s.state.User.Name) + "\n\n"
	if len(s.state.Recommendations) == 0 {
		content += theme.Hint.Render("No recommendations.")
	} else {
		content += s.menu.View()
	}
	if s.errMsg != "" {
		content += "\n" + theme.ErrorText.Render(s.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// summary cuts s to its first sentence, or to a fixed length.
func summary(s string) string {
	const limit = 70
	runes := []rune(s)
	for i, r := range runes {
		if r == '.' && i < limit {
			return string(runes[:i+1])
		}
	}
	if len(runes) > limit {
		return string(runes[:limit-1]) + "…"
	}
	return s
}
