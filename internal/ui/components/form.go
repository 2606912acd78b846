package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwise/internal/ui/theme"
)

// FieldKind selects how a form field is edited.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldChoice
)

// FormField is one labelled input in a Form.
type FormField struct {
	Key   string
	Label string
	Kind  FieldKind

	input  TextInput
	choice Choice
}

// TextField creates a free-text field holding value.
func TextField(key, label, placeholder, value string) FormField {
	in := NewTextInput(placeholder, 0)
	in.SetValue(value)
	return FormField{Key: key, Label: label, Kind: FieldText, input: in}
}

// NumericField creates a digits-only field holding value.
func NumericField(key, label, placeholder, value string, maxLen int) FormField {
	in := NewNumericInput(placeholder, maxLen)
	in.SetValue(value)
	return FormField{Key: key, Label: label, Kind: FieldText, input: in}
}

// PasswordField creates a masked text field.
func PasswordField(key, label string) FormField {
	return FormField{Key: key, Label: label, Kind: FieldText, input: NewPasswordInput("")}
}

// ChoiceField creates a field whose value is one of options.
func ChoiceField(key, label string, options []string, value string) FormField {
	return FormField{Key: key, Label: label, Kind: FieldChoice, choice: NewChoice(options, value)}
}

// Value returns the field's current value. Text is trimmed unless the
// field is masked.
func (f FormField) Value() string {
	if f.Kind == FieldChoice {
		return f.choice.Value()
	}
	if f.input.Model.EchoMode == textinput.EchoPassword {
		return f.input.Value()
	}
	return strings.TrimSpace(f.input.Value())
}

// Form is a vertical list of fields with one focused at a time. Tab and
// the arrow keys move between fields.
type Form struct {
	Title  string
	Fields []FormField
	Focus  int
}

// NewForm creates a form focused on its first field.
func NewForm(title string, fields ...FormField) Form {
	return Form{Title: title, Fields: fields}
}

// Init focuses the current field.
func (f *Form) Init() tea.Cmd {
	return f.focus(f.Focus)
}

// Update moves focus or forwards msg to the focused field.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if len(f.Fields) == 0 {
		return f, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f, f.focus((f.Focus + 1) % len(f.Fields))
		case "shift+tab", "up":
			return f, f.focus((f.Focus - 1 + len(f.Fields)) % len(f.Fields))
		}
	}

	field := &f.Fields[f.Focus]
	var cmd tea.Cmd
	if field.Kind == FieldChoice {
		field.choice, cmd = field.choice.Update(msg)
	} else {
		field.input, cmd = field.input.Update(msg)
	}
	return f, cmd
}

func (f *Form) focus(i int) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	for j := range f.Fields {
		f.Fields[j].input.Blur()
		f.Fields[j].choice.Blur()
	}
	f.Focus = i
	field := &f.Fields[i]
	if field.Kind == FieldChoice {
		field.choice.Focus()
		return nil
	}
	return field.input.Focus()
}

// Blur removes focus from every field.
func (f *Form) Blur() {
	for j := range f.Fields {
		f.Fields[j].input.Blur()
		f.Fields[j].choice.Blur()
	}
}

// FocusedKind returns the kind of the focused field.
func (f Form) FocusedKind() FieldKind {
	if len(f.Fields) == 0 {
		return FieldChoice
	}
	return f.Fields[f.Focus].Kind
}

// Value returns the value of the field with key, or "".
func (f Form) Value(key string) string {
	for _, field := range f.Fields {
		if field.Key == key {
			return field.Value()
		}
	}
	return ""
}

// SetValue replaces the value of the field with key. Choice fields
// accept only one of their options.
func (f *Form) SetValue(key, v string) {
	for i := range f.Fields {
		field := &f.Fields[i]
		if field.Key != key {
			continue
		}
		if field.Kind == FieldChoice {
			focused := field.choice.focused
			field.choice = NewChoice(field.choice.Options, v)
			field.choice.focused = focused
		} else {
			field.input.SetValue(v)
		}
	}
}

// Values returns every field's value by key.
func (f Form) Values() map[string]string {
	out := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		out[field.Key] = field.Value()
	}
	return out
}

// View renders the fields under the title, labels aligned to the
// widest one.
func (f Form) View(width int) string {
	labelWidth := 0
	for _, field := range f.Fields {
		labelWidth = max(labelWidth, lipgloss.Width(field.Label))
	}
	labelWidth = min(labelWidth+2, width/2)

	var b strings.Builder
	if f.Title != "" {
		b.WriteString(theme.Selected.Render(f.Title) + "\n\n")
	}
	for i, field := range f.Fields {
		labelStyle := theme.Label
		if i == f.Focus {
			labelStyle = theme.Focused
		}
		label := labelStyle.Width(labelWidth).Render(field.Label)

		var input string
		if field.Kind == FieldChoice {
			input = field.choice.View()
		} else {
			input = field.input.View()
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, input) + "\n")
	}
	return b.String()
}
