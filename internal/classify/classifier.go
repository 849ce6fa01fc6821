package classify

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dshills/aicompass/internal/llm"
	"github.com/dshills/aicompass/internal/prompt"
	"github.com/dshills/aicompass/internal/redact"
)

// Answer is the outcome for one question. Answered is false when the retry
// budget ran out; Code is meaningless in that case.
type Answer struct {
	Question   int
	Code       Code
	Answered   bool
	Match      MatchKind
	Raw        string
	Attempts   int
	Retries    int
	RateLimits int
}

// Options configures a Classifier.
type Options struct {
	Provider llm.Provider
	Settings llm.Settings
	Policy   Policy
	Logger   *zap.Logger
	Redactor *redact.Redactor
	// Sleep defaults to the real timer-based Sleep.
	Sleep SleepFunc
}

// Classifier asks the model about one statement at a time and resolves the
// reply to a response code.
type Classifier struct {
	provider llm.Provider
	settings llm.Settings
	policy   Policy
	logger   *zap.Logger
	redactor *redact.Redactor
	sleep    SleepFunc
}

// New creates a Classifier.
func New(opts Options) *Classifier {
	c := &Classifier{
		provider: opts.Provider,
		settings: opts.Settings,
		policy:   opts.Policy,
		logger:   opts.Logger,
		redactor: opts.Redactor,
		sleep:    opts.Sleep,
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.sleep == nil {
		c.sleep = Sleep
	}
	return c
}

// Classify resolves statement to a code. number is the 1-based question
// number, used only for logging. Exhausted retries yield an unanswered Answer
// and a nil error; the error is non-nil only when ctx ends.
func (c *Classifier) Classify(ctx context.Context, statement string, number int) (Answer, error) {
	log := c.logger.With(zap.Int("question", number))
	req := prompt.Build(statement)
	ans := Answer{Question: number}

	for {
		code, kind, err := c.untilServed(ctx, log, req, statement, &ans)
		if err == nil {
			ans.Code, ans.Match, ans.Answered = code, kind, true
			return ans, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ans, ctxErr
		}

		ans.Retries++
		invalid := errors.Is(err, ErrInvalidAnswer) || errors.Is(err, llm.ErrNoText)
		if invalid {
			log.Warn("invalid answer", zap.String("error", c.redactor.Error(err)))
		} else {
			log.Error("API error", zap.String("error", c.redactor.Error(err)))
		}

		if ans.Retries > c.policy.MaxRetries {
			reason := "API error"
			if invalid {
				reason = "invalid response"
			}
			log.Warn("max retries reached, skipping question",
				zap.String("reason", reason), zap.Int("max_retries", c.policy.MaxRetries))
			return ans, nil
		}

		wait := c.policy.APIBackoff(ans.Retries)
		if invalid {
			wait = c.policy.FormatBackoff(ans.Retries)
		}
		log.Info("retrying",
			zap.Int("retry", ans.Retries), zap.Int("max_retries", c.policy.MaxRetries), zap.Duration("wait", wait))
		if err := c.sleep(ctx, wait); err != nil {
			return ans, err
		}
	}
}

// untilServed repeats one attempt for as long as the provider reports rate
// limiting. Cooldowns do not touch the retry budget.
func (c *Classifier) untilServed(ctx context.Context, log *zap.Logger, req, statement string, ans *Answer) (Code, MatchKind, error) {
	for {
		code, kind, err := c.attempt(ctx, log, req, statement, ans)
		if !errors.Is(err, llm.ErrRateLimited) {
			return code, kind, err
		}
		ans.RateLimits++
		log.Warn("rate limited, cooling down",
			zap.Duration("wait", c.policy.RateLimitCooldown), zap.String("error", c.redactor.Error(err)))
		if err := c.sleep(ctx, c.policy.RateLimitCooldown); err != nil {
			return 0, NoMatch, err
		}
	}
}

func (c *Classifier) attempt(ctx context.Context, log *zap.Logger, req, statement string, ans *Answer) (Code, MatchKind, error) {
	ans.Attempts++
	log.Info("asking", zap.Int("attempt", ans.Attempts), zap.String("statement", prompt.Headline(statement)))

	text, err := c.provider.Generate(ctx, req, c.settings)
	if err != nil {
		return 0, NoMatch, err
	}

	ans.Raw = Normalize(text)
	log.Info("raw response", zap.String("response", ans.Raw))

	code, kind, err := Parse(text)
	if err != nil {
		return 0, NoMatch, err
	}
	switch kind {
	case Partial:
		log.Info("partial match", zap.String("answer", code.String()), zap.String("response", ans.Raw))
	default:
		log.Info("answer", zap.String("answer", code.String()))
	}
	return code, kind, nil
}
