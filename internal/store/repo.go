package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a user with the same email exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	// Purpose filters LLM events by purpose. Ignored by other queries.
	Purpose string
}

// UserRecord is a stored account.
type UserRecord struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	UserType     string
	Verified     bool
	CreatedAt    time.Time
	LastSignInAt time.Time // zero if the user never signed in
}

// UserRepo manages accounts.
type UserRepo interface {
	// Create inserts a new user. It returns ErrDuplicateEmail if the email
	// is already taken (case-insensitive).
	Create(ctx context.Context, u *UserRecord) error

	// ByEmail returns the user with the given email, or ErrNotFound.
	ByEmail(ctx context.Context, email string) (*UserRecord, error)

	// List returns all users, oldest first.
	List(ctx context.Context) ([]UserRecord, error)

	// TouchSignIn records a successful sign-in.
	TouchSignIn(ctx context.Context, id string, at time.Time) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AuthEventKind distinguishes sign-up from sign-in attempts.
type AuthEventKind string

const (
	AuthSignUp AuthEventKind = "sign_up"
	AuthSignIn AuthEventKind = "sign_in"
)

// AuthEventData captures one authentication attempt.
type AuthEventData struct {
	Kind         AuthEventKind
	Email        string
	Success      bool
	ErrorMessage string
}

// AuthEvent is a stored authentication attempt.
type AuthEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AuthEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendAuthEvent records a sign-up or sign-in attempt.
	AppendAuthEvent(ctx context.Context, data AuthEventData) error

	// QueryAuthEvents returns auth events, newest first.
	QueryAuthEvents(ctx context.Context, opts QueryOpts) ([]AuthEvent, error)
}
