// Package signup is the account-creation step.
package signup

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwise/internal/screen"
	"github.com/abhisek/careerwise/internal/screens/flow"
	"github.com/abhisek/careerwise/internal/ui/components"
	"github.com/abhisek/careerwise/internal/ui/layout"
	"github.com/abhisek/careerwise/internal/ui/theme"
	"github.com/abhisek/careerwise/internal/wizard"
)

// SignUpScreen collects new account details.
type SignUpScreen struct {
	env    flow.Env
	state  wizard.SignUp
	form   components.Form
	busy   bool
	errMsg string
}

var _ screen.Screen = (*SignUpScreen)(nil)
var _ screen.KeyHintProvider = (*SignUpScreen)(nil)
var _ screen.InputCapturer = (*SignUpScreen)(nil)

// New creates the screen for st.
func New(env flow.Env, st wizard.SignUp) *SignUpScreen {
	return &SignUpScreen{
		env:   env,
		state: st,
		form: components.NewForm("",
			components.TextField("name", "Full name", "", ""),
			components.TextField("email", "Email", "you@example.com", ""),
			components.PasswordField("password", "Password"),
		),
	}
}

func (s *SignUpScreen) Init() tea.Cmd { return s.form.Init() }

func (s *SignUpScreen) Title() string { return "Create Account" }

func (s *SignUpScreen) CapturesInput() bool { return true }

func (s *SignUpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flow.FailedMsg:
		s.busy = false
		s.errMsg = msg.Err.Error()
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return s, s.submit()
		case "esc", "ctrl+n":
			if err := s.env.Wizard.ShowSignIn(); err != nil {
				s.errMsg = err.Error()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *SignUpScreen) submit() tea.Cmd {
	if s.busy {
		return nil
	}
	cmd, err := s.env.Wizard.SignUp(s.form.Value("name"), s.form.Value("email"), s.form.Value("password"))
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.busy = true
	s.errMsg = ""
	return flow.Run(s.env.Ctx, cmd)
}

// Busy reports whether a sign-up attempt is in flight.
func (s *SignUpScreen) Busy() bool { return s.busy }

func (s *SignUpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Create account"},
		{Key: "Esc", Description: "Back to sign in"},
	}
}

func (s *SignUpScreen) View(width, height int) string {
	w := layout.ContentWidth(width)
	content := theme.Title.Render("Create your account") + "\n" +
		theme.Subtitle.Render(s.state.UserType.DisplayName()) + "\n\n" +
		s.form.View(w)
	switch {
	case s.busy:
		content += "\n" + theme.Hint.Render("Creating account…")
	case s.errMsg != "":
		content += "\n" + theme.ErrorText.Render(s.errMsg)
	}

	card := theme.Card.Width(w).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
