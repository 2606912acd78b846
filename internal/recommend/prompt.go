package recommend

import (
	"bytes"
	"sort"
	"strings"
	"text/template"

	"github.com/abhisek/careerwise/internal/appdata"
	"github.com/abhisek/careerwise/internal/profile"
)

const systemPrompt = `You are an experienced career counsellor. Given a person's education, skills, preferences and aptitude quiz answers, suggest careers that genuinely fit them.

Instructions:
- Suggest between 1 and {{.Max}} careers, best fit first.
- Ground every justification in details the person actually provided.
- List concrete skill gaps and a short, ordered learning path for each career.
- Only include free resources. Use full https URLs you are confident exist.
- Keep descriptions to two or three sentences.`

var systemTemplate = template.Must(template.New("system").Parse(systemPrompt))

var userTemplate = template.Must(template.New("profile").Parse(`User type: {{.UserType}}
{{range .Details}}{{.Label}}: {{.Value}}
{{end}}{{if .Education}}
Education history:
{{range .Education}}- {{.}}
{{end}}{{end}}{{if .Subjects}}
Subject proficiency:
{{range .Subjects}}- {{.}}
{{end}}{{end}}{{if .Quiz}}
Quiz answers:
{{range .Quiz}}- Q: {{.Question}}
  A: {{.Answer}}
{{end}}{{end}}{{if .Resume}}
Resume:
{{.Resume}}
{{end}}`))

type detail struct {
	Label string
	Value string
}

type quizAnswer struct {
	Question string
	Answer   string
}

type promptData struct {
	UserType  string
	Details   []detail
	Education []string
	Subjects  []string
	Quiz      []quizAnswer
	Resume    string
}

func buildSystemPrompt() (string, error) {
	var buf bytes.Buffer
	if err := systemTemplate.Execute(&buf, struct{ Max int }{MaxRecommendations}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// buildUserMessage renders the non-empty parts of p.
func buildUserMessage(p profile.UserProfile, userType profile.UserType, quiz appdata.QuizSet) (string, error) {
	data := promptData{UserType: userType.DisplayName()}

	add := func(label, value string) {
		if v := strings.TrimSpace(value); v != "" {
			data.Details = append(data.Details, detail{label, v})
		}
	}
	add("Age", p.Age)
	add("Location", p.Location)
	add("10th grade result", p.Education10th)
	add("10th grade school", p.Education10thSchool)
	add("12th grade result", p.Education12th)
	add("12th grade school", p.Education12thSchool)
	add("12th grade stream", p.Education12thStream)
	add("Hard skills", p.HardSkills)
	add("Soft skills", p.SoftSkills)
	add("Tools and software", p.ToolsAndSoftware)
	add("Certifications", p.Certifications)
	add("Languages", p.Languages)
	add("Internships", p.Internships)
	add("Projects", p.Projects)
	add("Favourite subjects", p.FavoriteSubjects)
	add("Preferred industries", p.PreferredIndustries)
	add("Work preferences", p.WorkPreferences)
	add("Higher studies plans", p.HigherStudies)
	add("Dream job roles", p.DreamJobRoles)

	for _, e := range p.EducationHistory {
		parts := nonEmpty(e.Level, e.Field, e.Specialization, e.Institution)
		if len(parts) == 0 {
			continue
		}
		line := strings.Join(parts, ", ")
		if e.Grade != "" {
			line += " (grade " + e.Grade + ")"
		}
		if years := strings.Join(nonEmpty(e.StartYear, e.EndYear), "-"); years != "" {
			line += " " + years
		}
		data.Education = append(data.Education, line)
	}

	subjects := make([]string, 0, len(p.SubjectProficiency))
	for s, level := range p.SubjectProficiency {
		subjects = append(subjects, s+": "+level)
	}
	sort.Strings(subjects)
	data.Subjects = subjects

	data.Quiz = answeredQuestions(p.QuizAnswers, quiz)

	if p.Resume != nil {
		data.Resume = strings.TrimSpace(p.Resume.Markdown)
	}

	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// answeredQuestions pairs answers with their question text, general
// questions first and then fields in sorted order. Answers to unknown
// questions are dropped.
func answeredQuestions(answers map[string]string, quiz appdata.QuizSet) []quizAnswer {
	if len(answers) == 0 {
		return nil
	}
	keys := make([]string, 0, len(quiz))
	for k := range quiz {
		if k != appdata.GeneralQuizKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	keys = append([]string{appdata.GeneralQuizKey}, keys...)

	seen := make(map[string]bool)
	var out []quizAnswer
	for _, k := range keys {
		for _, q := range quiz[k] {
			a, ok := answers[q.ID]
			if !ok || seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			out = append(out, quizAnswer{Question: q.Question, Answer: a})
		}
	}
	return out
}

func nonEmpty(vals ...string) []string {
	var out []string
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
