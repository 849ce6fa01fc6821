package classify

import (
	"context"
	"time"
)

// Policy holds the two retry policies wrapped around a single attempt:
// unbounded cooldown on rate limiting, and a counted budget shared by API
// failures and unparseable answers.
type Policy struct {
	MaxRetries        int
	RateLimitCooldown time.Duration
	APIBackoffBase    time.Duration
	APIBackoffStep    time.Duration
	FormatBackoffBase time.Duration
	FormatBackoffStep time.Duration
}

// DefaultPolicy returns the stock retry timings.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:        3,
		RateLimitCooldown: 60 * time.Second,
		APIBackoffBase:    5 * time.Second,
		APIBackoffStep:    2 * time.Second,
		FormatBackoffBase: 1 * time.Second,
		FormatBackoffStep: 1 * time.Second,
	}
}

// APIBackoff is the wait before the given retry after an API failure.
func (p Policy) APIBackoff(retry int) time.Duration {
	return p.APIBackoffBase + time.Duration(retry)*p.APIBackoffStep
}

// FormatBackoff is the wait before the given retry after an unparseable answer.
func (p Policy) FormatBackoff(retry int) time.Duration {
	return p.FormatBackoffBase + time.Duration(retry)*p.FormatBackoffStep
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the real SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
