package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwise/internal/ui/theme"
)

// Choice is a single-line option selector cycled with left and right.
type Choice struct {
	Options  []string
	Selected int // -1 when nothing is chosen yet
	focused  bool
}

// NewChoice creates a selector with value preselected when it is one of
// options.
func NewChoice(options []string, value string) Choice {
	c := Choice{Options: options, Selected: -1}
	for i, o := range options {
		if o == value {
			c.Selected = i
			break
		}
	}
	return c
}

// Focus and Blur toggle the focus marker.
func (c *Choice) Focus() { c.focused = true }
func (c *Choice) Blur()  { c.focused = false }

// Update handles left/right selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.Options) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Selected <= 0 {
			c.Selected = len(c.Options) - 1
		} else {
			c.Selected--
		}
	case "right", "l", "space":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}
	return c, nil
}

// Value returns the chosen option, or "".
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the current option between arrows.
func (c Choice) View() string {
	label := c.Value()
	if label == "" {
		label = "choose…"
	}
	if !c.focused {
		return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + label)
	}
	arrow := lipgloss.NewStyle().Foreground(theme.Secondary)
	return arrow.Render("◂ ") + theme.Focused.Render(label) + arrow.Render(" ▸")
}
