package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestChoiceCycles(t *testing.T) {
	c := NewChoice([]string{"Beginner", "Intermediate", "Advanced"}, "")
	if c.Value() != "" {
		t.Fatalf("expected no initial value, got %q", c.Value())
	}

	c, _ = c.Update(key(tea.KeyRight))
	if c.Value() != "Beginner" {
		t.Errorf("after right: got %q, want Beginner", c.Value())
	}
	c, _ = c.Update(key(tea.KeyLeft))
	if c.Value() != "Advanced" {
		t.Errorf("after left wrap: got %q, want Advanced", c.Value())
	}
}

func TestChoicePreselects(t *testing.T) {
	c := NewChoice([]string{"A", "B"}, "B")
	if c.Selected != 1 {
		t.Errorf("Selected = %d, want 1", c.Selected)
	}
	if NewChoice([]string{"A"}, "Z").Selected != -1 {
		t.Error("unknown value should leave nothing selected")
	}
}

func TestFormNavigationAndValues(t *testing.T) {
	f := NewForm("Details",
		TextField("name", "Name", "", "Asha"),
		ChoiceField("level", "Level", []string{"UG", "PG"}, ""),
		NumericField("age", "Age", "", "21", 3),
	)
	f.Init()

	if f.Focus != 0 || f.FocusedKind() != FieldText {
		t.Fatalf("expected focus on first text field, got %d", f.Focus)
	}

	f, _ = f.Update(key(tea.KeyTab))
	if f.Focus != 1 || f.FocusedKind() != FieldChoice {
		t.Fatalf("tab should move to choice, focus = %d", f.Focus)
	}
	f, _ = f.Update(key(tea.KeyRight))
	f, _ = f.Update(key(tea.KeyRight))

	f, _ = f.Update(key(tea.KeyUp))
	f, _ = f.Update(key(tea.KeyUp))
	if f.Focus != 2 {
		t.Errorf("up from first field should wrap to last, focus = %d", f.Focus)
	}

	want := map[string]string{"name": "Asha", "level": "PG", "age": "21"}
	got := f.Values()
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Values()[%q] = %q, want %q", k, got[k], v)
		}
	}
	if f.Value("missing") != "" {
		t.Error("unknown key should be empty")
	}
}

func TestFormViewShowsLabels(t *testing.T) {
	f := NewForm("About you", TextField("phone", "Phone", "", ""))
	view := f.View(60)
	if !strings.Contains(view, "About you") || !strings.Contains(view, "Phone") {
		t.Errorf("view missing title or label:\n%s", view)
	}
}

func TestNumericInputRejectsLetters(t *testing.T) {
	in := NewNumericInput("", 3)
	in.Focus()
	in, _ = in.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if in.Value() != "" {
		t.Errorf("letter accepted: %q", in.Value())
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	var picked string
	m := NewMenu([]MenuItem{
		{Label: "One", Disabled: true},
		{Label: "Two", Action: func() tea.Cmd { picked = "two"; return nil }},
		{Label: "Three", Action: func() tea.Cmd { picked = "three"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("up onto disabled item should not move, Selected = %d", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyDown))
	m.Update(key(tea.KeyEnter))
	if picked != "three" {
		t.Errorf("picked = %q, want three", picked)
	}
}

func TestStepProgress(t *testing.T) {
	p := NewStepProgress(2, 4, 40)
	if got := p.Fraction(); got != 0.5 {
		t.Errorf("Fraction() = %v, want 0.5", got)
	}
	if got := NewStepProgress(9, 4, 40).Fraction(); got != 1 {
		t.Errorf("Fraction() past the end = %v, want 1", got)
	}
	if !strings.Contains(p.View(), "Step 2 of 4") {
		t.Error("progress label missing")
	}
}
