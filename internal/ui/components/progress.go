package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwise/internal/ui/theme"
)

// StepProgress shows how far through a multi-page form the user is, as a
// "Step n of m" label followed by one segment per page.
type StepProgress struct {
	Step  int // 1-based
	Total int
	Width int
}

// NewStepProgress creates a StepProgress for step of total.
func NewStepProgress(step, total, width int) StepProgress {
	return StepProgress{Step: step, Total: total, Width: width}
}

// Fraction returns the completed share in [0, 1].
func (p StepProgress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Step)/float64(p.Total), 0), 1)
}

func (p StepProgress) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Step %d of %d", p.Step, p.Total)) + "  "
	if p.Total <= 0 {
		return label
	}

	avail := max(p.Width-lipgloss.Width(label), p.Total*2)
	seg := max(avail/p.Total-1, 1)

	var b strings.Builder
	b.WriteString(label)
	for i := range p.Total {
		style := theme.StepPending
		if i < p.Step {
			style = theme.StepDone
		}
		b.WriteString(style.Render(strings.Repeat(" ", seg)))
		if i < p.Total-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
