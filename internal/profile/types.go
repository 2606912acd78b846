// Package profile holds the records the wizard collects and produces: the
// user's profile, their authenticated identity, and the recommendations
// returned for them.
package profile

import "fmt"

// UserType distinguishes students from people who have finished their studies.
type UserType string

const (
	InEducation        UserType = "in_education"
	CompletedEducation UserType = "completed_education"
)

// Valid reports whether t is one of the known user types.
func (t UserType) Valid() bool {
	return t == InEducation || t == CompletedEducation
}

// DisplayName returns a human-readable label for the user type.
func (t UserType) DisplayName() string {
	switch t {
	case InEducation:
		return "Currently studying"
	case CompletedEducation:
		return "Completed education"
	default:
		return string(t)
	}
}

// ParseUserType converts a wire value into a UserType.
func ParseUserType(s string) (UserType, error) {
	t := UserType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown user type %q", s)
	}
	return t, nil
}

// User is an authenticated identity. Set once on sign-in.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	UserType UserType `json:"userType"`
	Verified bool     `json:"verified"`
}

// EducationEntry is one historical education record.
type EducationEntry struct {
	ID             string `json:"id"`
	Level          string `json:"level"`
	Field          string `json:"field"`
	Specialization string `json:"specialization"`
	Institution    string `json:"institution"`
	Grade          string `json:"grade"`
	StartYear      string `json:"startYear"`
	EndYear        string `json:"endYear"`
}

// ResumeArtifact is a resume attached to the profile. Attached files are
// referenced by path and never parsed; built resumes carry their markdown.
type ResumeArtifact struct {
	Name     string `json:"name"`
	Path     string `json:"path,omitempty"`
	Size     int64  `json:"size,omitempty"`
	Markdown string `json:"markdown,omitempty"`
}

// LearningStep is one step of a recommended learning path.
type LearningStep struct {
	Step           string `json:"step"`
	Recommendation string `json:"recommendation"`
	Details        string `json:"details"`
}

// Resource is a titled link.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CareerRecommendation is a single career suggestion. Treated as immutable.
type CareerRecommendation struct {
	CareerTitle            string         `json:"careerTitle"`
	Description            string         `json:"description"`
	RelevanceJustification string         `json:"relevanceJustification"`
	SkillGaps              []string       `json:"skillGaps"`
	LearningPath           []LearningStep `json:"learningPath"`
	YoutubeTutorials       []Resource     `json:"youtubeTutorials"`
	FreeCourses            []Resource     `json:"freeCourses"`
	EbooksOrBlogs          []Resource     `json:"ebooksOrBlogs"`
}
