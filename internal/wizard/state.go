package wizard

import "github.com/abhisek/careerwise/internal/profile"

// Screen identifies which step of the wizard is showing.
type Screen int

const (
	ScreenTypeSelection   Screen = iota // Choosing student or graduate
	ScreenSignIn                        // Signing in
	ScreenSignUp                        // Creating an account
	ScreenProfileBuilding               // Filling in the profile form
	ScreenResumeBuilder                 // Building or attaching a resume (students only)
	ScreenGenerating                    // Waiting for recommendations
	ScreenResults                       // Showing recommendations
)

var screenNames = [...]string{
	ScreenTypeSelection:   "type_selection",
	ScreenSignIn:          "sign_in",
	ScreenSignUp:          "sign_up",
	ScreenProfileBuilding: "profile_building",
	ScreenResumeBuilder:   "resume_builder",
	ScreenGenerating:      "generating",
	ScreenResults:         "results",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// State is the data of the current step. The set of implementations is
// closed: one struct per Screen.
type State interface {
	Screen() Screen
	isState()
}

// TypeSelection is the initial step.
type TypeSelection struct{}

// SignIn asks for credentials.
type SignIn struct {
	UserType profile.UserType
	// Notice is an informational message, set after sign-up succeeds.
	Notice string
}

// SignUp asks for new account details.
type SignUp struct {
	UserType profile.UserType
}

// ProfileBuilding is the profile form.
type ProfileBuilding struct {
	UserType profile.UserType
	User     profile.User
	// Error is the message from the last failed recommendation request.
	Error string
}

// ResumeBuilder lets students build or attach a resume.
type ResumeBuilder struct {
	UserType profile.UserType
	User     profile.User
}

// Generating waits for the recommendation request started on entry.
type Generating struct {
	UserType   profile.UserType
	User       profile.User
	Generation uint64
}

// Results shows the recommendations.
type Results struct {
	UserType        profile.UserType
	User            profile.User
	Recommendations []profile.CareerRecommendation
}

func (TypeSelection) Screen() Screen   { return ScreenTypeSelection }
func (SignIn) Screen() Screen          { return ScreenSignIn }
func (SignUp) Screen() Screen          { return ScreenSignUp }
func (ProfileBuilding) Screen() Screen { return ScreenProfileBuilding }
func (ResumeBuilder) Screen() Screen   { return ScreenResumeBuilder }
func (Generating) Screen() Screen      { return ScreenGenerating }
func (Results) Screen() Screen         { return ScreenResults }

func (TypeSelection) isState()   {}
func (SignIn) isState()          {}
func (SignUp) isState()          {}
func (ProfileBuilding) isState() {}
func (ResumeBuilder) isState()   {}
func (Generating) isState()      {}
func (Results) isState()         {}
