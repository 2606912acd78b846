// Package resumebuilder previews a resume built from the profile and lets
// students use it, attach an existing file, or skip.
package resumebuilder

import (
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/resume"
	"github.com/abhisek/careerwise/internal/screen"
	"github.com/abhisek/careerwise/internal/screens/flow"
	"github.com/abhisek/careerwise/internal/ui/components"
	"github.com/abhisek/careerwise/internal/ui/layout"
	"github.com/abhisek/careerwise/internal/ui/markdown"
	"github.com/abhisek/careerwise/internal/ui/theme"
	"github.com/abhisek/careerwise/internal/wizard"
)

const (
	actionUse = iota
	actionAttach
	actionSkip
)

var actions = []string{"Use this resume", "Attach a file", "Skip"}

// ResumeScreen is the optional step between the profile form and
// generation.
type ResumeScreen struct {
	env     flow.Env
	profile profile.UserProfile
	md      string

	vp        viewport.Model
	rendered  int // width the viewport content was rendered at
	selected  int
	attaching bool
	path      components.TextInput
	busy      bool
	errMsg    string
}

var _ screen.Screen = (*ResumeScreen)(nil)
var _ screen.KeyHintProvider = (*ResumeScreen)(nil)
var _ screen.InputCapturer = (*ResumeScreen)(nil)

// New creates the screen. The builder step carries no data of its own so
// the state is not needed beyond its type.
func New(env flow.Env, _ wizard.ResumeBuilder) *ResumeScreen {
	p := env.Wizard.Profile()
	return &ResumeScreen{
		env:     env,
		profile: p,
		md:      resume.Markdown(p),
		vp:      viewport.New(viewport.WithWidth(60), viewport.WithHeight(10)),
		path:    components.NewTextInput("~/Documents/resume.pdf", 0),
	}
}

func (s *ResumeScreen) Init() tea.Cmd { return nil }

func (s *ResumeScreen) Title() string { return "Resume" }

func (s *ResumeScreen) CapturesInput() bool { return s.attaching }

func (s *ResumeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flow.FailedMsg:
		s.busy = false
		s.errMsg = msg.Err.Error()
		return s, nil

	case tea.KeyPressMsg:
		if s.attaching {
			return s, s.updateAttach(msg)
		}
		switch msg.String() {
		case "left", "h", "shift+tab":
			s.selected = (s.selected - 1 + len(actions)) % len(actions)
			return s, nil
		case "right", "l", "tab":
			s.selected = (s.selected + 1) % len(actions)
			return s, nil
		case "enter":
			return s, s.activate()
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ResumeScreen) updateAttach(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.attaching = false
		s.path.Blur()
		s.errMsg = ""
		return nil
	case "enter":
		art, err := resume.Attach(s.path.Value())
		if err != nil {
			s.errMsg = err.Error()
			return nil
		}
		s.attaching = false
		s.path.Blur()
		return s.proceed(art)
	}
	var cmd tea.Cmd
	s.path, cmd = s.path.Update(msg)
	return cmd
}

func (s *ResumeScreen) activate() tea.Cmd {
	switch s.selected {
	case actionUse:
		return s.proceed(resume.Built(s.profile))
	case actionAttach:
		s.attaching = true
		s.errMsg = ""
		return s.path.Focus()
	default:
		return s.proceed(nil)
	}
}

// proceed stores art on the profile and starts generation. A nil art
// clears any earlier resume.
func (s *ResumeScreen) proceed(art *profile.ResumeArtifact) tea.Cmd {
	if s.busy {
		return nil
	}
	p := s.profile.Clone()
	p.Resume = art
	cmd, err := s.env.Wizard.ProceedWithResume(p)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.busy = true
	s.errMsg = ""
	return flow.Run(s.env.Ctx, cmd)
}

func (s *ResumeScreen) KeyHints() []layout.KeyHint {
	if s.attaching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Attach"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *ResumeScreen) View(width, height int) string {
	w := layout.ContentWidth(width)
	s.vp.SetWidth(w)
	s.vp.SetHeight(max(height-10, 3))
	if s.rendered != w {
		s.vp.SetContent(markdown.Render(s.md, w))
		s.rendered = w
	}

	content := theme.Title.Render("Your resume") + "\n" +
		theme.Subtitle.Render("Built from your profile. Use it, attach your own, or skip.") + "\n\n" +
		theme.Card.Width(w).Render(s.vp.View()) + "\n\n"

	if s.attaching {
		content += theme.Label.Render("Path to resume file") + "\n" + s.path.View() + "\n"
	} else {
		content += components.ButtonRow(actions, s.selected) + "\n"
	}
	if r := s.profile.Resume; r != nil && r.Path != "" {
		content += "\n" + theme.Hint.Render(fmt.Sprintf("Attached: %s (%s)", r.Name, humanize.Bytes(uint64(r.Size))))
	}

	switch {
	case s.busy:
		content += "\n" + theme.Hint.Render("Starting…")
	case s.errMsg != "":
		content += "\n" + theme.ErrorText.Render(s.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}
