package profile

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// UserProfile accumulates everything the user enters across the form screens.
type UserProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Age      string `json:"age"`
	Location string `json:"location"`

	Education10th       string `json:"education10th"`
	Education10thSchool string `json:"education10thSchool"`
	Education12th       string `json:"education12th"`
	Education12thSchool string `json:"education12thSchool"`
	Education12thStream string `json:"education12thStream"`

	EducationHistory []EducationEntry `json:"educationHistory"`

	HardSkills          string `json:"hardSkills"`
	SoftSkills          string `json:"softSkills"`
	ToolsAndSoftware    string `json:"toolsAndSoftware"`
	Certifications      string `json:"certifications"`
	Languages           string `json:"languages"`
	Internships         string `json:"internships"`
	Projects            string `json:"projects"`
	FavoriteSubjects    string `json:"favoriteSubjects"`
	PreferredIndustries string `json:"preferredIndustries"`
	WorkPreferences     string `json:"workPreferences"`
	HigherStudies       string `json:"higherStudies"`
	DreamJobRoles       string `json:"dreamJobRoles"`

	// SubjectProficiency maps subject name to a proficiency level.
	SubjectProficiency map[string]string `json:"subjectProficiency"`

	// QuizAnswers maps quiz question ID to the chosen answer.
	QuizAnswers map[string]string `json:"quizAnswers"`

	Resume *ResumeArtifact `json:"resume"`
}

// Default returns the all-empty profile every session starts from.
func Default() UserProfile {
	return UserProfile{
		EducationHistory:   []EducationEntry{},
		SubjectProficiency: map[string]string{},
		QuizAnswers:        map[string]string{},
	}
}

// Clone returns a deep copy of p.
func (p UserProfile) Clone() UserProfile {
	c := p
	c.EducationHistory = slices.Clone(p.EducationHistory)
	if c.EducationHistory == nil {
		c.EducationHistory = []EducationEntry{}
	}
	c.SubjectProficiency = maps.Clone(p.SubjectProficiency)
	if c.SubjectProficiency == nil {
		c.SubjectProficiency = map[string]string{}
	}
	c.QuizAnswers = maps.Clone(p.QuizAnswers)
	if c.QuizAnswers == nil {
		c.QuizAnswers = map[string]string{}
	}
	if p.Resume != nil {
		r := *p.Resume
		c.Resume = &r
	}
	return c
}

// NewEducationEntry returns an empty entry with a fresh unique ID.
func NewEducationEntry() EducationEntry {
	return EducationEntry{ID: uuid.NewString()}
}

// AddEducation appends e, assigning an ID if it has none.
func (p *UserProfile) AddEducation(e EducationEntry) EducationEntry {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	p.EducationHistory = append(p.EducationHistory, e)
	return e
}

// RemoveEducation deletes the entry with the given ID. Reports whether one was removed.
func (p *UserProfile) RemoveEducation(id string) bool {
	i := slices.IndexFunc(p.EducationHistory, func(e EducationEntry) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	p.EducationHistory = slices.Delete(p.EducationHistory, i, i+1)
	return true
}

// Fields returns the distinct education fields in history order.
func (p UserProfile) Fields() []string {
	var out []string
	for _, e := range p.EducationHistory {
		if e.Field != "" && !slices.Contains(out, e.Field) {
			out = append(out, e.Field)
		}
	}
	return out
}
