// Package appdata loads the configuration the wizard needs before any
// screen can be shown: the education-field taxonomy and per-field form
// structure (fetched from a Source) and the embedded quiz dataset.
package appdata

// EducationField describes one field of study offered in the profile form.
type EducationField struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Levels          []string `json:"levels,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
}

// FormField is one input inside a form section.
type FormField struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"` // text or select
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// FormSection groups related field-specific inputs.
type FormSection struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Fields []FormField `json:"fields"`
}

// FormStructure maps an education field ID to its form sections.
type FormStructure map[string][]FormSection

// QuizQuestion is one aptitude/interest question.
type QuizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Category string   `json:"category,omitempty"`
}

// QuizSet maps an education field ID to its questions. The "general" key
// holds questions asked regardless of field.
type QuizSet map[string][]QuizQuestion

// GeneralQuizKey is the QuizSet key for field-independent questions.
const GeneralQuizKey = "general"

// Bundle is the combined boot data. It is loaded once and never mutated.
type Bundle struct {
	Quiz            QuizSet
	EducationFields []EducationField
	FormStructure   FormStructure
}

// Field returns the education field with the given ID.
func (b *Bundle) Field(id string) (EducationField, bool) {
	for _, f := range b.EducationFields {
		if f.ID == id {
			return f, true
		}
	}
	return EducationField{}, false
}

// QuestionsFor returns the general questions followed by those of each
// listed field, skipping duplicate IDs.
func (b *Bundle) QuestionsFor(fields ...string) []QuizQuestion {
	seen := make(map[string]bool)
	var out []QuizQuestion
	add := func(qs []QuizQuestion) {
		for _, q := range qs {
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			out = append(out, q)
		}
	}
	add(b.Quiz[GeneralQuizKey])
	for _, f := range fields {
		add(b.Quiz[f])
	}
	return out
}

// SectionsFor returns the field-specific form sections for each listed field.
func (b *Bundle) SectionsFor(fields ...string) []FormSection {
	var out []FormSection
	for _, f := range fields {
		out = append(out, b.FormStructure[f]...)
	}
	return out
}
