// Package recommend turns a completed profile into career recommendations.
package recommend

import (
	"context"
	"errors"

	"github.com/abhisek/careerwise/internal/appdata"
	"github.com/abhisek/careerwise/internal/llm"
	"github.com/abhisek/careerwise/internal/profile"
)

// Service is the recommendation capability the wizard depends on.
type Service interface {
	// GetRecommendations returns recommendations for p. Failures are
	// *Error values whose message can be shown to the user as is.
	GetRecommendations(ctx context.Context, p profile.UserProfile, userType profile.UserType, quiz appdata.QuizSet) (*Result, error)
}

// Result is a successful recommendation response.
type Result struct {
	Recommendations []profile.CareerRecommendation `json:"recommendations"`
	Model           string                         `json:"-"`
}

// DefaultMessage is shown when a failure has no better description.
const DefaultMessage = "Error generating recommendations."

// Error is a recommendation failure with a display message.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return DefaultMessage
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// displayError converts a provider failure into an *Error.
func displayError(err error) *Error {
	var (
		rateLimit   *llm.ErrRateLimit
		truncated   *llm.ErrMaxTokensExceeded
		invalid     *llm.ErrInvalidResponse
		unavailable *llm.ErrProviderUnavailable
	)
	msg := DefaultMessage
	switch {
	case errors.Is(err, context.Canceled):
		msg = "Recommendation request was cancelled."
	case errors.Is(err, context.DeadlineExceeded):
		msg = "The AI service took too long to respond. Please try again."
	case errors.Is(err, llm.ErrNotConfigured):
		msg = "No AI provider is configured. Set an API key (for example GEMINI_API_KEY) and restart."
	case errors.As(err, &rateLimit):
		msg = "The AI service quota has been exceeded. Please try again later."
	case errors.As(err, &truncated):
		msg = "The AI response was cut short. Please try again."
	case errors.As(err, &invalid):
		msg = "The AI returned an unexpected response. Please try again."
	case errors.As(err, &unavailable):
		msg = "The AI service is unavailable right now. Please try again later."
	}
	return &Error{Message: msg, Err: err}
}

// Unavailable is the Service used when no provider could be configured.
// Every call fails with a displayable message.
type Unavailable struct {
	Reason error
}

var _ Service = Unavailable{}

func (u Unavailable) GetRecommendations(context.Context, profile.UserProfile, profile.UserType, appdata.QuizSet) (*Result, error) {
	reason := u.Reason
	if reason == nil {
		reason = llm.ErrNotConfigured
	}
	return nil, displayError(reason)
}
