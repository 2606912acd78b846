// Package signin is the sign-in step.
package signin

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

// SignInScreen collects credentials for the selected user type.
type SignInScreen struct {
	env    flow.Env
	state  wizard.SignIn
	form   components.Form
	busy   bool
	errMsg string
}

var _ screen.Screen = (*SignInScreen)(nil)
var _ screen.KeyHintProvider = (*SignInScreen)(nil)
var _ screen.InputCapturer = (*SignInScreen)(nil)

// New creates the screen for st.
func New(env flow.Env, st wizard.SignIn) *SignInScreen {
	return &SignInScreen{
		env:   env,
		state: st,
		form: components.NewForm("",
			components.TextField("email", "Email", "you@example.com", ""),
			components.PasswordField("password", "Password"),
		),
	}
}

func (s *SignInScreen) Init() tea.Cmd { return s.form.Init() }

func (s *SignInScreen) Title() string { return "Sign In" }

func (s *SignInScreen) CapturesInput() bool { return true }

func (s *SignInScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flow.FailedMsg:
		s.busy = false
		s.errMsg = msg.Err.Error()
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return s, s.submit()
		case "ctrl+n":
			if err := s.env.Wizard.ShowSignUp(); err != nil {
				s.errMsg = err.Error()
			}
			return s, nil
		case "esc":
			if err := s.env.Wizard.Reset(); err != nil {
				s.errMsg = err.Error()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *SignInScreen) submit() tea.Cmd {
	if s.busy {
		return nil
	}
	cmd, err := s.env.Wizard.SignIn(s.form.Value("email"), s.form.Value("password"))
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.busy = true
	s.errMsg = ""
	return flow.Run(s.env.Ctx, cmd)
}

// Busy reports whether a sign-in attempt is in flight.
func (s *SignInScreen) Busy() bool { return s.busy }

func (s *SignInScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+N", Description: "Create account"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SignInScreen) View(width, height int) string {
	w := layout.ContentWidth(width)
	content := theme.Title.Render("Sign in") + "\n" +
		theme.Subtitle.Render(s.state.UserType.DisplayName()) + "\n\n"
	if s.state.Notice != "" {
		content += theme.Notice.Render(s.state.Notice) + "\n\n"
	}
	content += s.form.View(w)
	switch {
	case s.busy:
		content += "\n" + theme.Hint.Render("Signing in…")
	case s.errMsg != "":
		content += "\n" + theme.ErrorText.Render(s.errMsg)
	}
	content += "\n\n" + theme.Hint.Render("New here? Press Ctrl+N to create an account.")

	card := theme.Card.Width(w).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
