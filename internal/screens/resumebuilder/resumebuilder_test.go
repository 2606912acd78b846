package resumebuilder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/resume"
	"github.com/abhisek/careerwise/internal/screens/flow"
	"github.com/abhisek/careerwise/internal/wizard"
	"github.com/abhisek/careerwise/internal/wizard/wizardtest"
)

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
)

func setup(t *testing.T) (*ResumeScreen, flow.Env, *wizardtest.Recommend) {
	t.Helper()
	recs := wizardtest.NewRecommend()
	o := wizard.New(wizardtest.Bundle(), wizard.Deps{Auth: wizardtest.NewAuth(), Recommend: recs})
	require.NoError(t, o.SelectType(profile.InEducation))
	cmd, err := o.SignIn("asha@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, o.Apply(cmd(context.Background())))
	p := o.Profile()
	p.HardSkills = "SQL"
	_, err = o.CompleteProfile(p)
	require.NoError(t, err)
	require.Equal(t, wizard.ScreenResumeBuilder, o.Screen())

	env := flow.Env{Ctx: context.Background(), Wizard: o}
	s := New(env, o.State().(wizard.ResumeBuilder))
	s.Init()
	return s, env, recs
}

func finish(t *testing.T, env flow.Env, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(flow.ResultMsg)
	require.True(t, ok)
	require.NoError(t, env.Wizard.Apply(msg.Result))
	assert.Equal(t, wizard.ScreenResults, env.Wizard.Screen())
}

func TestUseBuiltResume(t *testing.T) {
	s, env, recs := setup(t)
	_, cmd := s.Update(enter)
	assert.Equal(t, wizard.ScreenGenerating, env.Wizard.Screen())
	finish(t, env, cmd)

	require.Len(t, recs.Calls, 1)
	r := recs.Calls[0].Resume
	require.NotNil(t, r)
	assert.Equal(t, resume.BuiltName, r.Name)
	assert.Contains(t, r.Markdown, "SQL")
}

func TestSkipClearsResume(t *testing.T) {
	s, env, recs := setup(t)
	s.Update(right)
	s.Update(right)
	_, cmd := s.Update(enter)
	finish(t, env, cmd)
	assert.Nil(t, recs.Calls[0].Resume)
}

func TestAttachFile(t *testing.T) {
	s, env, recs := setup(t)
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	s.Update(right)
	s.Update(enter)
	require.True(t, s.CapturesInput())

	s.path.SetValue(filepath.Join(filepath.Dir(path), "missing.pdf"))
	_, cmd := s.Update(enter)
	assert.Nil(t, cmd)
	assert.True(t, s.CapturesInput(), "stays in attach mode on error")
	assert.NotEmpty(t, s.errMsg)

	s.path.SetValue(path)
	_, cmd = s.Update(enter)
	finish(t, env, cmd)

	r := recs.Calls[0].Resume
	require.NotNil(t, r)
	assert.Equal(t, "cv.pdf", r.Name)
	assert.Equal(t, int64(8), r.Size)
	assert.Empty(t, r.Markdown)
}

func TestAttachCancel(t *testing.T) {
	s, env, _ := setup(t)
	s.Update(right)
	s.Update(enter)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, s.CapturesInput())
	assert.Equal(t, wizard.ScreenResumeBuilder, env.Wizard.Screen())
}

func TestViewShowsPreview(t *testing.T) {
	s, _, _ := setup(t)
	view := s.View(80, 40)
	assert.Contains(t, view, "Use this resume")
	assert.Contains(t, view, "Your resume")
	assert.Equal(t, 72, s.rendered)
}
