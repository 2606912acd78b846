// Package profileform is the multi-page profile questionnaire.
package profileform

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwise/internal/appdata"
	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/screen"
	"github.com/abhisek/careerwise/internal/screens/flow"
	"github.com/abhisek/careerwise/internal/ui/components"
	"github.com/abhisek/careerwise/internal/ui/layout"
	"github.com/abhisek/careerwise/internal/ui/theme"
	"github.com/abhisek/careerwise/internal/wizard"
)

const (
	pageAbout = iota
	pageSchool
	pageEducation
	pageSkills
	pageInterests
	pageSubjects
	pageQuiz
	pageCount
)

var pageTitles = [pageCount]string{
	"About you",
	"School",
	"Education history",
	"Skills and experience",
	"Interests and goals",
	"Subject proficiency",
	"Aptitude quiz",
}

var streams = []string{"Science", "Commerce", "Arts", "Other"}

// ProfileScreen walks the user through the profile one page at a time.
// Every page change stores a draft with the orchestrator.
type ProfileScreen struct {
	env     flow.Env
	state   wizard.ProfileBuilding
	bundle  *appdata.Bundle
	profile profile.UserProfile

	page   int
	form   components.Form
	busy   bool
	errMsg string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)
var _ screen.InputCapturer = (*ProfileScreen)(nil)

// New creates the screen for st. After a failed generation it opens on the
// last page so the profile can be resubmitted directly.
func New(env flow.Env, st wizard.ProfileBuilding) *ProfileScreen {
	s := &ProfileScreen{
		env:     env,
		state:   st,
		bundle:  env.Wizard.Bundle(),
		profile: env.Wizard.Profile(),
	}
	if s.bundle == nil {
		s.bundle = &appdata.Bundle{}
	}
	if st.Error != "" {
		s.page = pageQuiz
	}
	s.form = s.buildForm()
	return s
}

func (s *ProfileScreen) Init() tea.Cmd { return s.form.Init() }

func (s *ProfileScreen) Title() string { return "Your Profile" }

func (s *ProfileScreen) CapturesInput() bool { return true }

// Page returns the zero-based page index.
func (s *ProfileScreen) Page() int { return s.page }

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flow.FailedMsg:
		s.busy = false
		s.errMsg = msg.Err.Error()
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return s, s.next()
		case "esc":
			return s, s.prev()
		case "ctrl+a":
			if s.page == pageEducation {
				s.errMsg = ""
				if !s.addDraft() {
					s.errMsg = "Choose a field of study first."
				}
				return s, s.load()
			}
		case "ctrl+d":
			if s.page == pageEducation && len(s.profile.EducationHistory) > 0 {
				last := s.profile.EducationHistory[len(s.profile.EducationHistory)-1]
				s.profile.RemoveEducation(last.ID)
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *ProfileScreen) next() tea.Cmd {
	if s.busy {
		return nil
	}
	s.commit()
	s.errMsg = ""

	if s.page < pageCount-1 {
		if err := s.env.Wizard.UpdateProfile(s.profile); err != nil {
			s.errMsg = err.Error()
			return nil
		}
		s.page++
		return s.load()
	}

	cmd, err := s.env.Wizard.CompleteProfile(s.profile)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.busy = cmd != nil
	return flow.Run(s.env.Ctx, cmd)
}

func (s *ProfileScreen) prev() tea.Cmd {
	if s.page == 0 {
		return nil
	}
	s.commit()
	s.errMsg = ""
	s.page--
	return s.load()
}

func (s *ProfileScreen) load() tea.Cmd {
	s.form = s.buildForm()
	return s.form.Init()
}

func (s *ProfileScreen) buildForm() components.Form {
	p := s.profile
	title := pageTitles[s.page]

	switch s.page {
	case pageAbout:
		return components.NewForm(title,
			components.TextField("name", "Full name", "", p.Name),
			components.TextField("email", "Email", "", p.Email),
			components.TextField("phone", "Phone", "", p.Phone),
			components.NumericField("age", "Age", "", p.Age, 3),
			components.TextField("location", "Location", "City, country", p.Location),
		)

	case pageSchool:
		return components.NewForm(title,
			components.TextField("education10th", "10th result", "e.g. 92%", p.Education10th),
			components.TextField("education10thSchool", "10th school", "", p.Education10thSchool),
			components.TextField("education12th", "12th result", "e.g. 88%", p.Education12th),
			components.TextField("education12thSchool", "12th school", "", p.Education12thSchool),
			components.ChoiceField("education12thStream", "12th stream", streams, p.Education12thStream),
		)

	case pageEducation:
		return components.NewForm(title,
			components.ChoiceField("field", "Field", s.fieldNames(), ""),
			components.ChoiceField("level", "Level", s.levels(), ""),
			components.TextField("specialization", "Specialization", "", ""),
			components.TextField("institution", "Institution", "", ""),
			components.TextField("grade", "Grade", "CGPA or %", ""),
			components.NumericField("startYear", "Start year", "YYYY", "", 4),
			components.NumericField("endYear", "End year", "YYYY", "", 4),
		)

	case pageSkills:
		return components.NewForm(title,
			components.TextField("hardSkills", "Technical skills", "Python, SQL", p.HardSkills),
			components.TextField("softSkills", "Soft skills", "Communication", p.SoftSkills),
			components.TextField("toolsAndSoftware", "Tools", "Excel, Figma", p.ToolsAndSoftware),
			components.TextField("certifications", "Certifications", "", p.Certifications),
			components.TextField("languages", "Languages", "", p.Languages),
			components.TextField("internships", "Internships", "", p.Internships),
			components.TextField("projects", "Projects", "", p.Projects),
		)

	case pageInterests:
		return components.NewForm(title,
			components.TextField("favoriteSubjects", "Favourite subjects", "", p.FavoriteSubjects),
			components.TextField("preferredIndustries", "Industries", "", p.PreferredIndustries),
			components.TextField("workPreferences", "Work preferences", "Remote, team size", p.WorkPreferences),
			components.TextField("higherStudies", "Higher studies", "", p.HigherStudies),
			components.TextField("dreamJobRoles", "Dream roles", "", p.DreamJobRoles),
		)

	case pageSubjects:
		var fields []components.FormField
		for _, sec := range s.bundle.SectionsFor(p.Fields()...) {
			for _, f := range sec.Fields {
				value := p.SubjectProficiency[f.Name]
				if f.Type == "select" {
					fields = append(fields, components.ChoiceField(f.Name, f.Label, f.Options, value))
				} else {
					fields = append(fields, components.TextField(f.Name, f.Label, f.Placeholder, value))
				}
			}
		}
		return components.NewForm(title, fields...)

	default:
		var fields []components.FormField
		for _, q := range s.bundle.QuestionsFor(p.Fields()...) {
			fields = append(fields, components.ChoiceField(q.ID, q.Question, q.Options, p.QuizAnswers[q.ID]))
		}
		return components.NewForm(title, fields...)
	}
}

// commit copies the current page into the profile.
func (s *ProfileScreen) commit() {
	v := s.form.Values()
	p := &s.profile

	switch s.page {
	case pageAbout:
		p.Name, p.Email, p.Phone = v["name"], v["email"], v["phone"]
		p.Age, p.Location = v["age"], v["location"]
	case pageSchool:
		p.Education10th, p.Education10thSchool = v["education10th"], v["education10thSchool"]
		p.Education12th, p.Education12thSchool = v["education12th"], v["education12thSchool"]
		p.Education12thStream = v["education12thStream"]
	case pageEducation:
		s.addDraft()
	case pageSkills:
		p.HardSkills, p.SoftSkills = v["hardSkills"], v["softSkills"]
		p.ToolsAndSoftware, p.Certifications = v["toolsAndSoftware"], v["certifications"]
		p.Languages, p.Internships, p.Projects = v["languages"], v["internships"], v["projects"]
	case pageInterests:
		p.FavoriteSubjects, p.PreferredIndustries = v["favoriteSubjects"], v["preferredIndustries"]
		p.WorkPreferences, p.HigherStudies = v["workPreferences"], v["higherStudies"]
		p.DreamJobRoles = v["dreamJobRoles"]
	case pageSubjects:
		mergeAnswers(p.SubjectProficiency, v)
	case pageQuiz:
		mergeAnswers(p.QuizAnswers, v)
	}
}

func mergeAnswers(dst, src map[string]string) {
	for k, v := range src {
		if v == "" {
			delete(dst, k)
			continue
		}
		dst[k] = v
	}
}

// addDraft appends the education entry being edited. It reports false when
// no field of study was chosen.
func (s *ProfileScreen) addDraft() bool {
	name := s.form.Value("field")
	i := slices.IndexFunc(s.bundle.EducationFields, func(f appdata.EducationField) bool { return f.Name == name })
	if name == "" || i < 0 {
		return false
	}
	entry := profile.NewEducationEntry()
	entry.Field = s.bundle.EducationFields[i].ID
	entry.Level = s.form.Value("level")
	entry.Specialization = s.form.Value("specialization")
	entry.Institution = s.form.Value("institution")
	entry.Grade = s.form.Value("grade")
	entry.StartYear = s.form.Value("startYear")
	entry.EndYear = s.form.Value("endYear")
	s.profile.AddEducation(entry)
	return true
}

func (s *ProfileScreen) fieldNames() []string {
	names := make([]string, 0, len(s.bundle.EducationFields))
	for _, f := range s.bundle.EducationFields {
		names = append(names, f.Name)
	}
	return names
}

// levels is the union of every field's levels in first-seen order.
func (s *ProfileScreen) levels() []string {
	var out []string
	for _, f := range s.bundle.EducationFields {
		for _, l := range f.Levels {
			if !slices.Contains(out, l) {
				out = append(out, l)
			}
		}
	}
	return out
}

func (s *ProfileScreen) fieldName(id string) string {
	if f, ok := s.bundle.Field(id); ok {
		return f.Name
	}
	return id
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Choose"},
	}
	if s.page == pageEducation {
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+A", Description: "Add entry"},
			layout.KeyHint{Key: "Ctrl+D", Description: "Remove last"},
		)
	}
	next := "Next page"
	if s.page == pageCount-1 {
		next = "Submit"
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: next},
		layout.KeyHint{Key: "Esc", Description: "Previous page"},
	)
}

func (s *ProfileScreen) View(width, height int) string {
	w := layout.ContentWidth(width)
	var b strings.Builder

	b.WriteString(components.NewStepProgress(s.page+1, pageCount, w).View() + "\n\n")
	if s.state.Error != "" {
		b.WriteString(theme.ErrorText.Render(s.state.Error) + "\n\n")
	}

	b.WriteString(s.form.View(w))
	switch {
	case len(s.form.Fields) == 0 && s.page == pageSubjects:
		b.WriteString(theme.Hint.Render("Add an education entry to answer field-specific questions.") + "\n")
	case len(s.form.Fields) == 0:
		b.WriteString(theme.Hint.Render("No questions for your fields.") + "\n")
	}

	if s.page == pageEducation {
		b.WriteString("\n" + theme.Label.Render("Added:") + "\n")
		if len(s.profile.EducationHistory) == 0 {
			b.WriteString(theme.Hint.Render("  nothing yet") + "\n")
		}
		for _, e := range s.profile.EducationHistory {
			line := fmt.Sprintf("  • %s %s", e.Level, s.fieldName(e.Field))
			if e.Institution != "" {
				line += ", " + e.Institution
			}
			if e.StartYear != "" || e.EndYear != "" {
				line += fmt.Sprintf(" (%s–%s)", e.StartYear, e.EndYear)
			}
			b.WriteString(theme.Body.Render(line) + "\n")
		}
	}

	switch {
	case s.busy:
		b.WriteString("\n" + theme.Hint.Render("Submitting…"))
	case s.errMsg != "":
		b.WriteString("\n" + theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}
