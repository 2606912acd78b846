// Package app is the root Bubble Tea model. It owns the orchestrator once
// boot data has loaded and keeps the visible screen in step with it.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerwise/internal/auth"
	"github.com/abhisek/careerwise/internal/loading"
	"github.com/abhisek/careerwise/internal/recommend"
	"github.com/abhisek/careerwise/internal/router"
	"github.com/abhisek/careerwise/internal/screen"
	"github.com/abhisek/careerwise/internal/screens/boot"
	"github.com/abhisek/careerwise/internal/screens/flow"
	"github.com/abhisek/careerwise/internal/screens/generating"
	"github.com/abhisek/careerwise/internal/screens/profileform"
	"github.com/abhisek/careerwise/internal/screens/results"
	"github.com/abhisek/careerwise/internal/screens/resumebuilder"
	"github.com/abhisek/careerwise/internal/screens/signin"
	"github.com/abhisek/careerwise/internal/screens/signup"
	"github.com/abhisek/careerwise/internal/screens/typeselect"
	"github.com/abhisek/careerwise/internal/ui/layout"
	"github.com/abhisek/careerwise/internal/wizard"
)

// Deps are what the app is wired with.
type Deps struct {
	Loader    boot.Loader
	Auth      auth.Service
	Recommend recommend.Service
	Cycler    *loading.Cycler
	Logger    *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    context.Context
	cancel context.CancelFunc
	deps   Deps
	logger *zap.Logger

	router *router.Router
	wizard *wizard.Orchestrator
	// shownGen is the orchestrator generation the active screen was built for.
	shownGen uint64
	synced   bool

	width  int
	height int
}

// newAppModel creates an AppModel showing the boot screen.
func newAppModel(ctx context.Context, deps Deps) AppModel {
	ctx, cancel := context.WithCancel(ctx)
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return AppModel{
		ctx:    ctx,
		cancel: cancel,
		deps:   deps,
		logger: logger.Named("app"),
		router: router.New(boot.New(ctx, deps.Loader)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.shutdown()
			return m, tea.Quit
		case "q":
			if !m.capturesInput() {
				m.shutdown()
				return m, tea.Quit
			}
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		case "ctrl+r":
			if m.wizard != nil {
				if err := m.wizard.Reset(); err != nil {
					m.logger.Warn("reset failed", zap.Error(err))
				}
				cmd := m.sync()
				return m, cmd
			}
		}

	case flow.BootedMsg:
		m.wizard = wizard.New(msg.Bundle, wizard.Deps{
			Auth:      m.deps.Auth,
			Recommend: m.deps.Recommend,
			Cycler:    m.deps.Cycler,
			Logger:    m.logger,
		})
		m.logger.Info("boot data loaded",
			zap.Int("education_fields", len(msg.Bundle.EducationFields)),
			zap.Int("quiz_fields", len(msg.Bundle.Quiz)))
		cmd := m.sync()
		return m, cmd

	case flow.ResultMsg:
		if m.wizard == nil {
			return m, nil
		}
		err := m.wizard.Apply(msg.Result)
		switch {
		case errors.Is(err, wizard.ErrStaleResult), errors.Is(err, wizard.ErrClosed):
			return m, nil
		case err != nil:
			m.logger.Info("step failed", zap.Stringer("screen", m.wizard.Screen()), zap.Error(err))
			cmd := m.router.Update(flow.FailedMsg{Err: err})
			cmd = tea.Batch(cmd, m.sync())
			return m, cmd
		}
		cmd := m.sync()
		return m, cmd
	}

	// sync mutates m, so it has to run before m is returned.
	cmd := m.router.Update(msg)
	cmd = tea.Batch(cmd, m.sync())
	return m, cmd
}

// sync rebuilds the screen stack when the orchestrator has moved since the
// active screen was built.
func (m *AppModel) sync() tea.Cmd {
	if m.wizard == nil {
		return nil
	}
	gen := m.wizard.Generation()
	if m.synced && gen == m.shownGen {
		return nil
	}
	m.synced = true
	m.shownGen = gen

	env := flow.Env{Ctx: m.ctx, Wizard: m.wizard}
	m.logger.Debug("show screen", zap.Stringer("screen", m.wizard.Screen()), zap.Uint64("generation", gen))
	return m.router.Reset(screenFor(env, m.wizard.State()))
}

func screenFor(env flow.Env, st wizard.State) screen.Screen {
	switch st := st.(type) {
	case wizard.SignIn:
		return signin.New(env, st)
	case wizard.SignUp:
		return signup.New(env, st)
	case wizard.ProfileBuilding:
		return profileform.New(env, st)
	case wizard.ResumeBuilder:
		return resumebuilder.New(env, st)
	case wizard.Generating:
		return generating.New(env, st)
	case wizard.Results:
		return results.New(env, st)
	default:
		return typeselect.New(env)
	}
}

func (m AppModel) capturesInput() bool {
	return screen.CapturesInput(m.router.Active())
}

func (m *AppModel) shutdown() {
	if m.wizard != nil {
		m.wizard.Close()
	}
	m.cancel()
}

// userName is the signed-in user's name, or "".
func userName(st wizard.State) string {
	switch st := st.(type) {
	case wizard.ProfileBuilding:
		return st.User.Name
	case wizard.ResumeBuilder:
		return st.User.Name
	case wizard.Generating:
		return st.User.Name
	case wizard.Results:
		return st.User.Name
	}
	return ""
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	frame := layout.Frame{Title: active.Title()}
	if m.wizard != nil {
		frame.User = userName(m.wizard.State())
	}
	hints, ok := screen.Hints(active)
	if !ok && m.router.Depth() > 1 {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	frame.Hints = hints

	v.SetContent(frame.Render(m.width, m.height, m.router.View))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, deps Deps) error {
	m := newAppModel(ctx, deps)
	defer m.cancel()

	p, detach := newProgram(m, deps.Cycler)
	defer detach()

	final, err := p.Run()
	if fm, ok := final.(AppModel); ok {
		fm.shutdown()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// newProgram creates the program for model and forwards the cycler's frames
// to it. Send blocks until the loop receives, and the loop is what starts
// and stops the cycler, so each frame is sent from its own goroutine.
// Receivers order frames by their Seq. The returned func detaches the
// cycler.
func newProgram(model tea.Model, cycler *loading.Cycler, opts ...tea.ProgramOption) (*tea.Program, func()) {
	p := tea.NewProgram(model, opts...)
	if cycler == nil {
		return p, func() {}
	}
	cycler.SetNotify(func(f loading.Frame) {
		go p.Send(flow.FrameMsg{Frame: f})
	})
	return p, func() { cycler.SetNotify(nil) }
}
