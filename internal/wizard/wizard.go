// Package wizard is the screen orchestrator: a closed state machine over
// the wizard's steps that owns the user profile and drives the
// collaborators (authentication, recommendations, loading messages).
//
// The orchestrator is not safe for concurrent use. It is meant to be owned
// by the UI event loop: collaborator calls are handed out as Cmd values to
// run elsewhere, and their Results are passed back through Apply.
package wizard

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/abhisek/careerwise/internal/appdata"
	"github.com/abhisek/careerwise/internal/auth"
	"github.com/abhisek/careerwise/internal/loading"
	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/recommend"
)

// SignUpNotice is shown on the sign-in screen after an account is created.
const SignUpNotice = "Account created successfully! Please sign in."

// Cmd is a collaborator call. It may block and must be run off the event
// loop; its Result is handed back to Apply.
type Cmd func(ctx context.Context) Result

// Result is the outcome of a Cmd.
type Result interface {
	generation() uint64
}

type signInResult struct {
	gen  uint64
	user *profile.User
	err  error
}

type signUpResult struct {
	gen uint64
	err error
}

type recommendResult struct {
	gen uint64
	res *recommend.Result
	err error
}

func (r signInResult) generation() uint64    { return r.gen }
func (r signUpResult) generation() uint64    { return r.gen }
func (r recommendResult) generation() uint64 { return r.gen }

// Deps are the orchestrator's collaborators. Auth and Recommend are
// required.
type Deps struct {
	Auth      auth.Service
	Recommend recommend.Service
	// Cycler, if set, runs while recommendations are generated.
	Cycler *loading.Cycler
	Logger *zap.Logger
}

// Orchestrator holds the current step and the profile being built.
type Orchestrator struct {
	bundle *appdata.Bundle
	auth   auth.Service
	recs   recommend.Service
	cycler *loading.Cycler
	logger *zap.Logger

	state   State
	profile profile.UserProfile
	gen     uint64
	closed  bool
}

// New creates an orchestrator on the type-selection screen with an empty
// profile.
func New(bundle *appdata.Bundle, deps Deps) *Orchestrator {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		bundle:  bundle,
		auth:    deps.Auth,
		recs:    deps.Recommend,
		cycler:  deps.Cycler,
		logger:  logger.Named("wizard"),
		state:   TypeSelection{},
		profile: profile.Default(),
	}
}

// State returns the current step.
func (o *Orchestrator) State() State { return o.state }

// Screen returns the current step's identifier.
func (o *Orchestrator) Screen() Screen { return o.state.Screen() }

// Profile returns a copy of the profile.
func (o *Orchestrator) Profile() profile.UserProfile { return o.profile.Clone() }

// Bundle returns the boot data the orchestrator was created with.
func (o *Orchestrator) Bundle() *appdata.Bundle { return o.bundle }

// Generation increases on every transition.
func (o *Orchestrator) Generation() uint64 { return o.gen }

// LoadingFrame returns the loading message to show while generating.
func (o *Orchestrator) LoadingFrame() loading.Frame {
	if o.cycler == nil {
		return loading.Frame{}
	}
	return o.cycler.Frame()
}

// SelectType records the user type and moves to sign-in.
func (o *Orchestrator) SelectType(t profile.UserType) error {
	if err := o.expect("select type", ScreenTypeSelection); err != nil {
		return err
	}
	if !t.Valid() {
		return ErrInvalidUserType
	}
	o.transition("select type", SignIn{UserType: t})
	return nil
}

// ShowSignUp switches from sign-in to sign-up.
func (o *Orchestrator) ShowSignUp() error {
	if err := o.expect("show sign up", ScreenSignIn); err != nil {
		return err
	}
	st := o.state.(SignIn)
	o.transition("show sign up", SignUp{UserType: st.UserType})
	return nil
}

// ShowSignIn switches from sign-up to sign-in.
func (o *Orchestrator) ShowSignIn() error {
	if err := o.expect("show sign in", ScreenSignUp); err != nil {
		return err
	}
	st := o.state.(SignUp)
	o.transition("show sign in", SignIn{UserType: st.UserType})
	return nil
}

// SignIn returns the command that checks the credentials.
func (o *Orchestrator) SignIn(email, password string) (Cmd, error) {
	if err := o.expect("sign in", ScreenSignIn); err != nil {
		return nil, err
	}
	svc := o.auth
	gen := o.gen
	in := auth.SignInInput{Email: email, Password: password, UserType: o.state.(SignIn).UserType}
	return func(ctx context.Context) Result {
		u, err := svc.SignIn(ctx, in)
		return signInResult{gen: gen, user: u, err: err}
	}, nil
}

// SignUp returns the command that creates the account.
func (o *Orchestrator) SignUp(name, email, password string) (Cmd, error) {
	if err := o.expect("sign up", ScreenSignUp); err != nil {
		return nil, err
	}
	svc := o.auth
	gen := o.gen
	in := auth.SignUpInput{Name: name, Email: email, Password: password, UserType: o.state.(SignUp).UserType}
	return func(ctx context.Context) Result {
		return signUpResult{gen: gen, err: svc.SignUp(ctx, in)}
	}, nil
}

// UpdateProfile stores a draft of the profile without leaving the form.
func (o *Orchestrator) UpdateProfile(p profile.UserProfile) error {
	if err := o.expect("update profile", ScreenProfileBuilding); err != nil {
		return err
	}
	o.profile = p.Clone()
	return nil
}

// CompleteProfile stores p and leaves the form. Students continue to the
// resume builder and the returned Cmd is nil. Everyone else goes straight
// to generation and must run the returned Cmd.
func (o *Orchestrator) CompleteProfile(p profile.UserProfile) (Cmd, error) {
	if err := o.expect("complete profile", ScreenProfileBuilding); err != nil {
		return nil, err
	}
	st := o.state.(ProfileBuilding)
	o.profile = p.Clone()

	if st.UserType == profile.InEducation {
		o.transition("complete profile", ResumeBuilder{UserType: st.UserType, User: st.User})
		return nil, nil
	}
	return o.beginGenerating("complete profile", st.UserType, st.User), nil
}

// ProceedWithResume stores p (now carrying the resume) and starts
// generation.
func (o *Orchestrator) ProceedWithResume(p profile.UserProfile) (Cmd, error) {
	if err := o.expect("proceed with resume", ScreenResumeBuilder); err != nil {
		return nil, err
	}
	st := o.state.(ResumeBuilder)
	o.profile = p.Clone()
	return o.beginGenerating("proceed with resume", st.UserType, st.User), nil
}

// Apply folds the result of a Cmd into the state. Authentication failures
// are returned and leave the state as it was. Recommendation failures are
// stored on the profile screen and Apply returns nil. Results issued before
// the latest transition return ErrStaleResult.
func (o *Orchestrator) Apply(r Result) error {
	if o.closed {
		return ErrClosed
	}
	if r.generation() != o.gen {
		o.logger.Debug("stale result discarded",
			zap.Uint64("result_generation", r.generation()),
			zap.Uint64("generation", o.gen))
		return ErrStaleResult
	}

	switch r := r.(type) {
	case signInResult:
		st, ok := o.state.(SignIn)
		if !ok {
			return &TransitionError{Event: "sign in result", From: o.Screen()}
		}
		if r.err != nil {
			return r.err
		}
		if r.user == nil {
			o.logger.Warn("sign in returned no user")
			return auth.ErrInvalidCredentials
		}
		o.profile.Name = r.user.Name
		o.profile.Email = r.user.Email
		o.transition("signed in", ProfileBuilding{UserType: st.UserType, User: *r.user})

	case signUpResult:
		st, ok := o.state.(SignUp)
		if !ok {
			return &TransitionError{Event: "sign up result", From: o.Screen()}
		}
		if r.err != nil {
			return r.err
		}
		o.transition("signed up", SignIn{UserType: st.UserType, Notice: SignUpNotice})

	case recommendResult:
		st, ok := o.state.(Generating)
		if !ok {
			return &TransitionError{Event: "recommendation result", From: o.Screen()}
		}
		err := r.err
		if err == nil && r.res == nil {
			err = &recommend.Error{}
		}
		if err != nil {
			msg := err.Error()
			if msg == "" {
				msg = recommend.DefaultMessage
			}
			o.transition("recommendations failed", ProfileBuilding{UserType: st.UserType, User: st.User, Error: msg})
			return nil
		}
		o.transition("recommendations ready", Results{
			UserType:        st.UserType,
			User:            st.User,
			Recommendations: slices.Clone(r.res.Recommendations),
		})
	}
	return nil
}

// Reset returns to type selection with an empty profile. Valid from any
// screen.
func (o *Orchestrator) Reset() error {
	if o.closed {
		return ErrClosed
	}
	o.profile = profile.Default()
	o.transition("reset", TypeSelection{})
	return nil
}

// Close stops the loading cycler and makes outstanding results stale.
// It is safe to call more than once.
func (o *Orchestrator) Close() {
	if o.closed {
		return
	}
	o.closed = true
	o.gen++
	o.syncCycler()
	o.logger.Debug("closed", zap.Stringer("screen", o.Screen()))
}

func (o *Orchestrator) beginGenerating(event string, t profile.UserType, u profile.User) Cmd {
	o.transition(event, Generating{UserType: t, User: u})

	svc := o.recs
	gen := o.gen
	p := o.profile.Clone()
	var quiz appdata.QuizSet
	if o.bundle != nil {
		quiz = o.bundle.Quiz
	}
	return func(ctx context.Context) Result {
		res, err := svc.GetRecommendations(ctx, p, t, quiz)
		return recommendResult{gen: gen, res: res, err: err}
	}
}

func (o *Orchestrator) expect(event string, s Screen) error {
	if o.closed {
		return ErrClosed
	}
	if o.Screen() != s {
		return &TransitionError{Event: event, From: o.Screen()}
	}
	return nil
}

// transition is the only place the state changes.
func (o *Orchestrator) transition(event string, next State) {
	from := o.Screen()
	o.gen++
	if g, ok := next.(Generating); ok {
		g.Generation = o.gen
		next = g
	}
	o.state = next
	o.syncCycler()

	o.logger.Debug("transition",
		zap.String("event", event),
		zap.Stringer("from", from),
		zap.Stringer("to", next.Screen()),
		zap.Uint64("generation", o.gen))
}

// syncCycler runs the cycler exactly while generating.
func (o *Orchestrator) syncCycler() {
	if o.cycler == nil {
		return
	}
	want := !o.closed && o.Screen() == ScreenGenerating
	switch {
	case want && !o.cycler.Running():
		o.cycler.Start()
	case !want && o.cycler.Running():
		o.cycler.Stop()
	}
}
