// Package auth registers and signs in local accounts.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/careerwise/internal/profile"
)

var (
	ErrEmailTaken         = errors.New("An account with this email already exists.")
	ErrInvalidCredentials = errors.New("Invalid email or password.")
	ErrUserTypeMismatch   = errors.New("This account is registered for a different user type.")
)

// ValidationError reports the first input field that failed validation.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	switch e.Field {
	case "Email":
		return "Please enter a valid email address."
	case "Password":
		if e.Rule == "min" {
			return fmt.Sprintf("Password must be at least %d characters.", MinPasswordLength)
		}
		return "Please enter your password."
	case "Name":
		return "Please enter your name."
	case "UserType":
		return "Please choose whether you are studying or have completed your education."
	}
	return fmt.Sprintf("%s is invalid (%s).", e.Field, e.Rule)
}

// MinPasswordLength is the shortest password SignUp accepts.
const MinPasswordLength = 6

// SignUpInput is the data needed to create an account.
type SignUpInput struct {
	Name     string           `validate:"required,max=120"`
	Email    string           `validate:"required,email"`
	Password string           `validate:"required,min=6,max=72"`
	UserType profile.UserType `validate:"required,oneof=in_education completed_education"`
}

// SignInInput is the data needed to sign in.
type SignInInput struct {
	Email    string           `validate:"required,email"`
	Password string           `validate:"required"`
	UserType profile.UserType `validate:"required,oneof=in_education completed_education"`
}

// Service is the authentication capability the wizard depends on.
type Service interface {
	// SignUp creates an account. It does not sign the user in.
	SignUp(ctx context.Context, in SignUpInput) error

	// SignIn checks credentials and returns the user.
	SignIn(ctx context.Context, in SignInInput) (*profile.User, error)
}
