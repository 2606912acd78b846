package generating

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/careerwise/internal/loading"
	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/screens/flow"
	"github.com/abhisek/careerwise/internal/wizard"
	"github.com/abhisek/careerwise/internal/wizard/wizardtest"
)

func newScreen(t *testing.T) *GeneratingScreen {
	t.Helper()
	cyc := loading.New(loading.NewManualClock(), nil)
	o := wizard.New(wizardtest.Bundle(), wizard.Deps{
		Auth:      wizardtest.NewAuth(),
		Recommend: wizardtest.NewRecommend(),
		Cycler:    cyc,
	})
	t.Cleanup(o.Close)

	if err := o.SelectType(profile.CompletedEducation); err != nil {
		t.Fatal(err)
	}
	cmd, _ := o.SignIn("asha@example.com", "secret123")
	if err := o.Apply(cmd(context.Background())); err != nil {
		t.Fatal(err)
	}
	if _, err := o.CompleteProfile(o.Profile()); err != nil {
		t.Fatal(err)
	}
	return New(flow.Env{Ctx: context.Background(), Wizard: o}, o.State().(wizard.Generating))
}

func TestStartsOnFirstMessage(t *testing.T) {
	s := newScreen(t)
	if got := s.Frame(); got.Index != 0 || !got.Visible {
		t.Fatalf("initial frame = %+v", got)
	}
	if !strings.Contains(s.View(120, 30), "personalized career path") {
		t.Error("view should show the first message")
	}
}

func next(f loading.Frame, index int, visible bool) loading.Frame {
	f.Seq++
	f.Index = index
	f.Message = loading.Messages[index]
	f.Visible = visible
	return f
}

func TestFrameMessages(t *testing.T) {
	s := newScreen(t)

	faded := next(s.Frame(), 1, false)
	s.Update(flow.FrameMsg{Frame: faded})
	if strings.Contains(s.View(120, 30), loading.Messages[1]) {
		t.Error("hidden frame should not show its message")
	}

	s.Update(flow.FrameMsg{Frame: next(faded, 1, true)})
	if !strings.Contains(s.View(120, 30), "Analyzing your academic background") {
		t.Error("visible frame should show its message")
	}
}

func TestOutdatedFramesDropped(t *testing.T) {
	s := newScreen(t)
	start := s.Frame()

	shown := next(next(start, 0, false), 2, true)
	s.Update(flow.FrameMsg{Frame: shown})

	// Overtaken by a newer frame of the same run.
	s.Update(flow.FrameMsg{Frame: next(start, 1, true)})
	if got := s.Frame(); got != shown {
		t.Errorf("older frame replaced current: got %+v, want %+v", got, shown)
	}

	// Left over from an earlier run.
	old := next(shown, 3, true)
	old.Session = start.Session - 1
	s.Update(flow.FrameMsg{Frame: old})
	if got := s.Frame(); got != shown {
		t.Errorf("frame from another run replaced current: got %+v", got)
	}
	if strings.Contains(s.View(120, 30), loading.Messages[3]) {
		t.Error("view shows a dropped frame")
	}
}
