package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/store"
)

// LocalService stores accounts in the local database with bcrypt-hashed
// passwords.
type LocalService struct {
	users    store.UserRepo
	events   store.EventRepo
	validate *validator.Validate
	cost     int
	logger   *zap.Logger
	now      func() time.Time
}

// Options configures a LocalService.
type Options struct {
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	// Events, if set, receives one record per attempt.
	Events store.EventRepo
	Logger *zap.Logger
}

var _ Service = (*LocalService)(nil)

// NewLocalService creates a LocalService over users.
func NewLocalService(users store.UserRepo, opts Options) *LocalService {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalService{
		users:    users,
		events:   opts.Events,
		validate: validator.New(),
		cost:     cost,
		logger:   logger.Named("auth"),
		now:      time.Now,
	}
}

func (s *LocalService) SignUp(ctx context.Context, in SignUpInput) (err error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	defer func() { s.record(ctx, store.AuthSignUp, in.Email, err) }()

	if err := s.check(in); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.users.Create(ctx, &store.UserRecord{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		UserType:     string(in.UserType),
		CreatedAt:    s.now().UTC(),
	})
	if errors.Is(err, store.ErrDuplicateEmail) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (s *LocalService) SignIn(ctx context.Context, in SignInInput) (u *profile.User, err error) {
	in.Email = normalizeEmail(in.Email)
	defer func() { s.record(ctx, store.AuthSignIn, in.Email, err) }()

	if err := s.check(in); err != nil {
		return nil, err
	}

	rec, err := s.users.ByEmail(ctx, in.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if profile.UserType(rec.UserType) != in.UserType {
		return nil, ErrUserTypeMismatch
	}

	if err := s.users.TouchSignIn(ctx, rec.ID, s.now().UTC()); err != nil {
		s.logger.Warn("failed to record sign-in time", zap.String("user_id", rec.ID), zap.Error(err))
	}

	return &profile.User{
		ID:       rec.ID,
		Name:     rec.Name,
		Email:    rec.Email,
		UserType: profile.UserType(rec.UserType),
		Verified: rec.Verified,
	}, nil
}

// check runs struct validation and converts the first failure.
func (s *LocalService) check(in any) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: verrs[0].Field(), Rule: verrs[0].Tag()}
	}
	return fmt.Errorf("validate input: %w", err)
}

func (s *LocalService) record(ctx context.Context, kind store.AuthEventKind, email string, err error) {
	fields := []zap.Field{zap.String("kind", string(kind)), zap.String("email", email)}
	if err != nil {
		s.logger.Info("auth attempt rejected", append(fields, zap.Error(err))...)
	} else {
		s.logger.Info("auth attempt succeeded", fields...)
	}

	if s.events == nil {
		return
	}
	data := store.AuthEventData{Kind: kind, Email: email, Success: err == nil}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	if recErr := s.events.AppendAuthEvent(context.WithoutCancel(ctx), data); recErr != nil {
		s.logger.Warn("failed to record auth event", zap.Error(recErr))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
