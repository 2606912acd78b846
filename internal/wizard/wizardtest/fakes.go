// Package wizardtest provides in-memory collaborators for driving a
// wizard.Orchestrator in tests.
package wizardtest

import (
	"context"
	"sync"

	"github.com/abhisek/careerwise/internal/appdata"
	"github.com/abhisek/careerwise/internal/auth"
	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/recommend"
)

// Auth is a scripted auth.Service.
type Auth struct {
	mu sync.Mutex
	// User is returned by SignIn with UserType set from the input.
	User      profile.User
	SignInErr error
	// NoUser makes SignIn return neither a user nor an error.
	NoUser    bool
	SignUpErr error
	SignIns   []auth.SignInInput
	SignUps   []auth.SignUpInput
}

var _ auth.Service = (*Auth)(nil)

// NewAuth returns an Auth that accepts every sign-in as a fixed user.
func NewAuth() *Auth {
	return &Auth{User: profile.User{ID: "u1", Name: "Asha Rao", Email: "asha@example.com"}}
}

func (a *Auth) SignIn(_ context.Context, in auth.SignInInput) (*profile.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.SignIns = append(a.SignIns, in)
	if a.SignInErr != nil {
		return nil, a.SignInErr
	}
	if a.NoUser {
		return nil, nil
	}
	u := a.User
	u.UserType = in.UserType
	return &u, nil
}

func (a *Auth) SignUp(_ context.Context, in auth.SignUpInput) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.SignUps = append(a.SignUps, in)
	return a.SignUpErr
}

// Recommend is a scripted recommend.Service that records its inputs.
type Recommend struct {
	mu    sync.Mutex
	Recs  []profile.CareerRecommendation
	Err   error
	Calls []profile.UserProfile
	Types []profile.UserType
}

var _ recommend.Service = (*Recommend)(nil)

// NewRecommend returns a Recommend that answers with two careers.
func NewRecommend() *Recommend {
	return &Recommend{Recs: []profile.CareerRecommendation{
		{CareerTitle: "Data Analyst", Description: "Turns data into decisions.", SkillGaps: []string{"Tableau"}},
		{CareerTitle: "ML Engineer", Description: "Builds learning systems."},
	}}
}

func (r *Recommend) GetRecommendations(_ context.Context, p profile.UserProfile, t profile.UserType, _ appdata.QuizSet) (*recommend.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, p)
	r.Types = append(r.Types, t)
	if r.Err != nil {
		return nil, r.Err
	}
	return &recommend.Result{Recommendations: r.Recs}, nil
}

// Bundle returns small boot data with one field, form section and quiz
// question per kind.
func Bundle() *appdata.Bundle {
	return &appdata.Bundle{
		EducationFields: []appdata.EducationField{
			{ID: "engineering", Name: "Engineering", Levels: []string{"Diploma", "Bachelor's"}},
			{ID: "commerce", Name: "Commerce", Levels: []string{"Bachelor's"}},
		},
		FormStructure: appdata.FormStructure{
			"engineering": {{
				ID:    "engineering-core",
				Title: "Core engineering subjects",
				Fields: []appdata.FormField{
					{Name: "Mathematics", Label: "Engineering mathematics", Type: "select", Options: []string{"Beginner", "Advanced"}},
					{Name: "Lab work", Label: "Favourite lab", Type: "text"},
				},
			}},
		},
		Quiz: appdata.QuizSet{
			appdata.GeneralQuizKey: {{ID: "g1", Question: "People or data?", Options: []string{"People", "Data"}}},
			"engineering":          {{ID: "e1", Question: "Build or design?", Options: []string{"Build", "Design"}}},
		},
	}
}
