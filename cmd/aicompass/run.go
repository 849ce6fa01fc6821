package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/aicompass/internal/classify"
	"github.com/dshills/aicompass/internal/config"
	"github.com/dshills/aicompass/internal/instrument"
	"github.com/dshills/aicompass/internal/llm"
	"github.com/dshills/aicompass/internal/logging"
	"github.com/dshills/aicompass/internal/quiz"
	"github.com/dshills/aicompass/internal/redact"
	"github.com/dshills/aicompass/internal/render"
)

const envFile = ".env"

// runOpts carries the seams tests replace; the zero value is production.
type runOpts struct {
	configPath string
	envFile    string
	logger     *zap.Logger
	sleep      classify.SleepFunc
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "aicompass",
		Short:         "Put the political compass questionnaire to a Claude model and plot the result",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuiz(cmd.Context(), cmd.OutOrStdout(), runOpts{
				configPath: os.Getenv("AICOMPASS_CONFIG"),
				envFile:    envFile,
			})
		},
	}
}

func runQuiz(ctx context.Context, out io.Writer, o runOpts) error {
	// 1. Configuration; the credential check happens before any work.
	cfg, err := config.Load(o.configPath, o.envFile)
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			return exitError(3, "Error: %v.", err)
		}
		return exitError(3, "configuration error: %v", err)
	}

	// 2. Logger
	logger := o.logger
	if logger == nil {
		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return exitError(3, "configuration error: %v", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	// 3. Provider
	provider, err := llm.ResolveProvider(cfg.Anthropic.APIKey, cfg.Anthropic.APIURL, cfg.Anthropic.Model)
	if err != nil {
		return exitError(3, "model provider error: %v", err)
	}
	logger.Info("using model", zap.String("provider", provider.Name()), zap.String("model", cfg.Anthropic.Model))

	// 4. Instrument
	inst, err := instrument.LoadBuiltin(instrument.Default)
	if err != nil {
		return fmt.Errorf("load instrument: %w", err)
	}

	// 5. Ask, score, normalize
	classifier := classify.New(classify.Options{
		Provider: provider,
		Settings: llm.Settings{Temperature: 0, MaxTokens: cfg.Anthropic.MaxTokens},
		Policy: classify.Policy{
			MaxRetries:        cfg.Retry.MaxRetries,
			RateLimitCooldown: cfg.Retry.RateLimitCooldown(),
			APIBackoffBase:    cfg.Retry.APIBackoffBase(),
			APIBackoffStep:    cfg.Retry.APIBackoffStep(),
			FormatBackoffBase: cfg.Retry.FormatBackoffBase(),
			FormatBackoffStep: cfg.Retry.FormatBackoffStep(),
		},
		Logger:   logger,
		Redactor: redact.New(cfg.Anthropic.APIKey),
		Sleep:    o.sleep,
	})
	runner := &quiz.Runner{Instrument: inst, Answerer: classifier, Logger: logger}

	res, err := runner.Run(ctx)
	if err != nil {
		return exitError(1, "run aborted: %v", err)
	}

	// 6. Report
	if _, err := io.WriteString(out, render.Report(res.Final)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
