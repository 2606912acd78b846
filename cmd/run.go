package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerwise/internal/app"
	"github.com/abhisek/careerwise/internal/appdata"
	"github.com/abhisek/careerwise/internal/auth"
	"github.com/abhisek/careerwise/internal/llm"
	"github.com/abhisek/careerwise/internal/loading"
	"github.com/abhisek/careerwise/internal/recommend"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	deps := app.Deps{
		Loader: appdata.NewLoader(cfg.Source(), logger),
		Auth: auth.NewLocalService(st.UserRepo(), auth.Options{
			Events: eventRepo,
			Logger: logger,
		}),
		Cycler: loading.New(nil, nil),
		Logger: logger,
	}

	provider, llmCfg, err := llm.NewProviderFromEnv(ctx, llm.Options{Events: eventRepo, Logger: logger})
	switch {
	case err == nil:
		logger.Info("llm provider ready", zap.String("provider", llmCfg.Provider), zap.String("model", provider.ModelID()))
		deps.Recommend = recommend.NewLLMService(provider, recommend.DefaultConfig(), logger)
	case errors.Is(err, llm.ErrNotConfigured):
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Recommendations will be unavailable.")
		deps.Recommend = recommend.Unavailable{Reason: err}
	default:
		logger.Warn("llm provider failed to initialize", zap.Error(err))
		fmt.Fprintln(os.Stderr, "LLM provider could not be initialized:", err)
		deps.Recommend = recommend.Unavailable{Reason: &llm.ErrProviderUnavailable{Err: err}}
	}

	return app.Run(ctx, deps)
}
