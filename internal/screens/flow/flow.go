// Package flow holds the messages screens use to drive the wizard from
// inside the Bubble Tea loop.
package flow

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerwise/internal/appdata"
	"github.com/abhisek/careerwise/internal/loading"
	"github.com/abhisek/careerwise/internal/wizard"
)

// BootedMsg is sent once boot data has loaded.
type BootedMsg struct {
	Bundle *appdata.Bundle
}

// ResultMsg carries the outcome of a wizard.Cmd back to the loop.
type ResultMsg struct {
	Result wizard.Result
}

// FailedMsg is delivered to the active screen when Apply returned an
// error, such as rejected credentials.
type FailedMsg struct {
	Err error
}

// FrameMsg is sent by the loading cycler whenever its frame changes.
type FrameMsg struct {
	Frame loading.Frame
}

// Run returns a tea.Cmd that runs cmd off the loop and reports its Result.
// A nil cmd yields nil.
func Run(ctx context.Context, cmd wizard.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		return ResultMsg{Result: cmd(ctx)}
	}
}

// Env is what every wizard screen is built with.
type Env struct {
	Ctx    context.Context
	Wizard *wizard.Orchestrator
}
