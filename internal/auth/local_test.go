package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/store"
)

func newTestService(t *testing.T) (*LocalService, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	svc := NewLocalService(s.UserRepo(), Options{
		BcryptCost: bcrypt.MinCost,
		Events:     s.EventRepo(),
		Logger:     zaptest.NewLogger(t),
	})
	return svc, s
}

func signUp(t *testing.T, svc *LocalService) {
	t.Helper()
	err := svc.SignUp(context.Background(), SignUpInput{
		Name:     "Asha Rao",
		Email:    "Asha@Example.com ",
		Password: "secret123",
		UserType: profile.InEducation,
	})
	require.NoError(t, err)
}

func TestSignUpThenSignIn(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	signUp(t, svc)

	u, err := svc.SignIn(ctx, SignInInput{
		Email:    "asha@example.com",
		Password: "secret123",
		UserType: profile.InEducation,
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", u.Name)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.Equal(t, profile.InEducation, u.UserType)
	assert.NotEmpty(t, u.ID)

	rec, err := s.UserRepo().ByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", rec.PasswordHash)
	assert.False(t, rec.LastSignInAt.IsZero())
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	signUp(t, svc)

	err := svc.SignUp(context.Background(), SignUpInput{
		Name:     "Someone Else",
		Email:    "asha@example.com",
		Password: "another123",
		UserType: profile.CompletedEducation,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInFailures(t *testing.T) {
	svc, _ := newTestService(t)
	signUp(t, svc)

	tests := []struct {
		name string
		in   SignInInput
		want error
	}{
		{"wrong password", SignInInput{Email: "asha@example.com", Password: "nope", UserType: profile.InEducation}, ErrInvalidCredentials},
		{"unknown email", SignInInput{Email: "nobody@example.com", Password: "secret123", UserType: profile.InEducation}, ErrInvalidCredentials},
		{"type mismatch", SignInInput{Email: "asha@example.com", Password: "secret123", UserType: profile.CompletedEducation}, ErrUserTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.SignIn(context.Background(), tt.in)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		in        SignUpInput
		wantField string
		wantRule  string
	}{
		{"missing name", SignUpInput{Email: "a@b.co", Password: "secret123", UserType: profile.InEducation}, "Name", "required"},
		{"bad email", SignUpInput{Name: "A", Email: "not-an-email", Password: "secret123", UserType: profile.InEducation}, "Email", "email"},
		{"short password", SignUpInput{Name: "A", Email: "a@b.co", Password: "abc", UserType: profile.InEducation}, "Password", "min"},
		{"bad user type", SignUpInput{Name: "A", Email: "a@b.co", Password: "secret123", UserType: "retired"}, "UserType", "oneof"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SignUp(ctx, tt.in)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, tt.wantRule, ve.Rule)
			assert.NotEmpty(t, ve.Error())
		})
	}
}

func TestValidationMessages(t *testing.T) {
	assert.Equal(t, "Please enter a valid email address.", (&ValidationError{Field: "Email", Rule: "email"}).Error())
	assert.Equal(t, "Password must be at least 6 characters.", (&ValidationError{Field: "Password", Rule: "min"}).Error())
	assert.Equal(t, "Please enter your password.", (&ValidationError{Field: "Password", Rule: "required"}).Error())
}

func TestAuthEventsRecorded(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	signUp(t, svc)
	_, err := svc.SignIn(ctx, SignInInput{Email: "asha@example.com", Password: "wrong", UserType: profile.InEducation})
	require.Error(t, err)

	events, err := s.EventRepo().QueryAuthEvents(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, store.AuthSignIn, events[0].Kind)
	assert.False(t, events[0].Success)
	assert.Equal(t, ErrInvalidCredentials.Error(), events[0].ErrorMessage)
	assert.Equal(t, store.AuthSignUp, events[1].Kind)
	assert.True(t, events[1].Success)
	assert.Equal(t, "asha@example.com", events[1].Email)
}
