package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/careerwise/internal/appdata"
	"github.com/abhisek/careerwise/internal/llm"
	"github.com/abhisek/careerwise/internal/profile"
)

const validResponse = `{"recommendations":[{
	"careerTitle":"Data Analyst",
	"description":"Turns data into decisions.",
	"relevanceJustification":"Strong in statistics and SQL.",
	"skillGaps":["Tableau"],
	"learningPath":[{"step":"1","recommendation":"Learn SQL joins","details":"Practice daily."}],
	"youtubeTutorials":[{"title":"SQL in 60 minutes","url":"https://youtube.com/watch?v=x"}],
	"freeCourses":[],
	"ebooksOrBlogs":[]
}]}`

func testQuiz() appdata.QuizSet {
	return appdata.QuizSet{
		appdata.GeneralQuizKey: {
			{ID: "g1", Question: "Do you prefer working with people or data?", Options: []string{"People", "Data"}},
		},
		"engineering": {
			{ID: "e1", Question: "Which do you enjoy more?", Options: []string{"Building", "Designing"}},
		},
	}
}

func testProfile() profile.UserProfile {
	p := profile.Default()
	p.Name = "Asha"
	p.Age = "21"
	p.HardSkills = "SQL, Python"
	p.SubjectProficiency["Maths"] = "Advanced"
	p.QuizAnswers["g1"] = "Data"
	p.QuizAnswers["e1"] = "Building"
	p.QuizAnswers["unknown"] = "ignored"
	p.AddEducation(profile.EducationEntry{Level: "Bachelor's", Field: "engineering", Institution: "IIT", StartYear: "2021", EndYear: "2025"})
	return p
}

func TestGetRecommendations(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validResponse)})
	svc := NewLLMService(mock, DefaultConfig(), zaptest.NewLogger(t))

	res, err := svc.GetRecommendations(context.Background(), testProfile(), profile.CompletedEducation, testQuiz())
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, "Data Analyst", res.Recommendations[0].CareerTitle)
	assert.Equal(t, []string{"Tableau"}, res.Recommendations[0].SkillGaps)
	assert.Equal(t, "mock", res.Model)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Same(t, RecommendationSchema, calls[0].Schema)
	assert.Contains(t, calls[0].System, "between 1 and 5 careers")
	msg := calls[0].Messages[0].Content
	assert.Contains(t, msg, "User type: Completed education")
	assert.Contains(t, msg, "Hard skills: SQL, Python")
	assert.Contains(t, msg, "- Maths: Advanced")
	assert.Contains(t, msg, "Bachelor's, engineering, IIT 2021-2025")
	assert.NotContains(t, msg, "ignored")
	assert.Less(t, strings.Index(msg, "people or data"), strings.Index(msg, "enjoy more"))
}

func TestBuildUserMessageSkipsEmpty(t *testing.T) {
	msg, err := buildUserMessage(profile.Default(), profile.InEducation, nil)
	require.NoError(t, err)
	assert.Equal(t, "User type: Currently studying\n", msg)
}

func TestBuildUserMessageIncludesResume(t *testing.T) {
	p := profile.Default()
	p.Resume = &profile.ResumeArtifact{Name: "resume.md", Markdown: "# Asha\n\nStudent"}
	msg, err := buildUserMessage(p, profile.InEducation, nil)
	require.NoError(t, err)
	assert.Contains(t, msg, "Resume:\n# Asha")
}

func TestGetRecommendationsErrors(t *testing.T) {
	tests := []struct {
		name    string
		resp    llm.MockResponse
		wantMsg string
	}{
		{"quota", llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}}, "The AI service quota has been exceeded. Please try again later."},
		{"unavailable", llm.MockResponse{Err: &llm.ErrProviderUnavailable{StatusCode: 503}}, "The AI service is unavailable right now. Please try again later."},
		{"truncated", llm.MockResponse{Err: &llm.ErrMaxTokensExceeded{}}, "The AI response was cut short. Please try again."},
		{"schema mismatch", llm.MockResponse{Content: json.RawMessage(`{"recommendations":[{"careerTitle":"X"}]}`)}, "The AI returned an unexpected response. Please try again."},
		{"empty list", llm.MockResponse{Content: json.RawMessage(`{"recommendations":[]}`)}, "The AI returned an unexpected response. Please try again."},
		{"other", llm.MockResponse{Err: errors.New("boom")}, DefaultMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLLMService(llm.NewMockProvider(tt.resp), DefaultConfig(), nil)
			res, err := svc.GetRecommendations(context.Background(), testProfile(), profile.InEducation, testQuiz())
			assert.Nil(t, res)
			var re *Error
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.wantMsg, re.Error())
		})
	}
}

func TestGetRecommendationsCancelled(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validResponse), Delay: time.Minute})
	svc := NewLLMService(mock, DefaultConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.GetRecommendations(ctx, testProfile(), profile.InEducation, testQuiz())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Recommendation request was cancelled.", err.Error())
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.GetRecommendations(context.Background(), profile.Default(), profile.InEducation, nil)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
	assert.Contains(t, err.Error(), "No AI provider is configured")
}

func TestErrorDefaultMessage(t *testing.T) {
	assert.Equal(t, DefaultMessage, (&Error{}).Error())
}
