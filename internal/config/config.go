// Package config loads run settings from defaults, an optional YAML file, a
// local .env file, and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dshills/aicompass/internal/llm"
)

// ErrMissingAPIKey is returned when no credential is available.
var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY not found in .env file or environment")

type Config struct {
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Retry     RetryConfig     `yaml:"retry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type AnthropicConfig struct {
	// APIKey comes from the environment only.
	APIKey    string `yaml:"-"`
	APIURL    string `yaml:"api_url"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

type RetryConfig struct {
	MaxRetries           int `yaml:"max_retries"`
	RateLimitCooldownSec int `yaml:"rate_limit_cooldown_sec"`
	APIBackoffBaseSec    int `yaml:"api_backoff_base_sec"`
	APIBackoffStepSec    int `yaml:"api_backoff_step_sec"`
	FormatBackoffBaseSec int `yaml:"format_backoff_base_sec"`
	FormatBackoffStepSec int `yaml:"format_backoff_step_sec"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (r RetryConfig) RateLimitCooldown() time.Duration { return seconds(r.RateLimitCooldownSec) }
func (r RetryConfig) APIBackoffBase() time.Duration    { return seconds(r.APIBackoffBaseSec) }
func (r RetryConfig) APIBackoffStep() time.Duration    { return seconds(r.APIBackoffStepSec) }
func (r RetryConfig) FormatBackoffBase() time.Duration { return seconds(r.FormatBackoffBaseSec) }
func (r RetryConfig) FormatBackoffStep() time.Duration { return seconds(r.FormatBackoffStepSec) }

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }

// Load builds the configuration. envFile is loaded first when it exists and
// never overrides variables already set in the process; path names an
// optional YAML file. A missing API key yields ErrMissingAPIKey.
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	cfg := &Config{
		Anthropic: AnthropicConfig{
			APIURL:    llm.AnthropicAPIURL,
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 25,
		},
		Retry: RetryConfig{
			MaxRetries:           3,
			RateLimitCooldownSec: 60,
			APIBackoffBaseSec:    5,
			APIBackoffStepSec:    2,
			FormatBackoffBaseSec: 1,
			FormatBackoffStepSec: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Anthropic.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Anthropic.MaxTokens <= 0 {
		return nil, fmt.Errorf("invalid max_tokens %d", cfg.Anthropic.MaxTokens)
	}
	if cfg.Retry.MaxRetries < 0 {
		return nil, fmt.Errorf("invalid max_retries %d", cfg.Retry.MaxRetries)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Anthropic.APIKey = v
	}
	if v := os.Getenv("AICOMPASS_MODEL"); v != "" {
		cfg.Anthropic.Model = v
	}
	if v := os.Getenv("AICOMPASS_API_URL"); v != "" {
		cfg.Anthropic.APIURL = v
	}
	if v := os.Getenv("AICOMPASS_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Retry.MaxRetries = n
		}
	}
	if v := os.Getenv("AICOMPASS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("AICOMPASS_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
