package recommend

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/careerwise/internal/appdata"
	"github.com/abhisek/careerwise/internal/llm"
	"github.com/abhisek/careerwise/internal/profile"
)

// MaxRecommendations caps how many careers are requested.
const MaxRecommendations = 5

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the settings used by the CLI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}

// LLMService asks an llm.Provider for recommendations.
type LLMService struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

var _ Service = (*LLMService)(nil)

// NewLLMService creates an LLMService. A nil logger is replaced by a no-op.
func NewLLMService(provider llm.Provider, cfg Config, logger *zap.Logger) *LLMService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMService{provider: provider, cfg: cfg, logger: logger.Named("recommend")}
}

type recommendationOutput struct {
	Recommendations []profile.CareerRecommendation `json:"recommendations"`
}

func (s *LLMService) GetRecommendations(ctx context.Context, p profile.UserProfile, userType profile.UserType, quiz appdata.QuizSet) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "recommendations")

	system, err := buildSystemPrompt()
	if err != nil {
		return nil, &Error{Message: DefaultMessage, Err: fmt.Errorf("build system prompt: %w", err)}
	}
	userMsg, err := buildUserMessage(p, userType, quiz)
	if err != nil {
		return nil, &Error{Message: DefaultMessage, Err: fmt.Errorf("build profile prompt: %w", err)}
	}

	start := time.Now()
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      RecommendationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.logger.Warn("recommendation request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, displayError(fmt.Errorf("generate recommendations: %w", err))
	}

	var out recommendationOutput
	if err := resp.Decode(&out); err != nil {
		return nil, displayError(err)
	}
	if len(out.Recommendations) == 0 {
		return nil, &Error{Message: "No recommendations were returned. Please try again."}
	}

	s.logger.Info("recommendations generated",
		zap.Int("count", len(out.Recommendations)),
		zap.String("model", resp.Model),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{Recommendations: out.Recommendations, Model: resp.Model}, nil
}
