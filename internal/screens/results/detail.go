package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/screen"
	"github.com/abhisek/careerwise/internal/ui/layout"
	"github.com/abhisek/careerwise/internal/ui/markdown"
)

// DetailScreen shows one recommendation in full.
type DetailScreen struct {
	rec      profile.CareerRecommendation
	vp       viewport.Model
	rendered int
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// NewDetail creates the detail view for rec.
func NewDetail(rec profile.CareerRecommendation) *DetailScreen {
	return &DetailScreen{
		rec: rec,
		vp:  viewport.New(viewport.WithWidth(60), viewport.WithHeight(20)),
	}
}

func (s *DetailScreen) Init() tea.Cmd { return nil }

func (s *DetailScreen) Title() string { return s.rec.CareerTitle }

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) View(width, height int) string {
	w := layout.ContentWidth(width)
	s.vp.SetWidth(w)
	s.vp.SetHeight(max(height, 1))
	if s.rendered != w {
		s.vp.SetContent(markdown.Render(CareerMarkdown(s.rec), w))
		s.rendered = w
	}
	return s.vp.View()
}

// CareerMarkdown renders rec as a markdown document.
func CareerMarkdown(rec profile.CareerRecommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", rec.CareerTitle, rec.Description)

	if rec.RelevanceJustification != "" {
		fmt.Fprintf(&b, "## Why it fits you\n\n%s\n\n", rec.RelevanceJustification)
	}
	if len(rec.SkillGaps) > 0 {
		b.WriteString("## Skills to build\n\n")
		for _, g := range rec.SkillGaps {
			fmt.Fprintf(&b, "- %s\n", g)
		}
		b.WriteString("\n")
	}
	if len(rec.LearningPath) > 0 {
		b.WriteString("## Learning path\n\n")
		for i, step := range rec.LearningPath {
			fmt.Fprintf(&b, "%d. **%s**: %s", i+1, step.Step, step.Recommendation)
			if step.Details != "" {
				fmt.Fprintf(&b, " %s", step.Details)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	resources(&b, "YouTube tutorials", rec.YoutubeTutorials)
	resources(&b, "Free courses", rec.FreeCourses)
	resources(&b, "Ebooks and blogs", rec.EbooksOrBlogs)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func resources(b *strings.Builder, title string, rs []profile.Resource) {
	if len(rs) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, r := range rs {
		if r.URL == "" {
			fmt.Fprintf(b, "- %s\n", r.Title)
			continue
		}
		fmt.Fprintf(b, "- [%s](%s)\n", r.Title, r.URL)
	}
	b.WriteString("\n")
}
