// Package redact scrubs credentials out of text before it reaches the log.
package redact

import (
	"regexp"
	"strings"
)

const mask = "[REDACTED]"

var patterns = []*regexp.Regexp{
	// Anthropic API keys
	regexp.MustCompile(`sk-ant-[A-Za-z0-9_\-]+`),
	// Header echoes
	regexp.MustCompile(`(?i)(x-api-key|authorization)\s*[:=]\s*\S+`),
	// Bearer tokens
	regexp.MustCompile(`Bearer\s+[A-Za-z0-9\-._~+/]+=*`),
	// Generic key/secret/token assignments
	regexp.MustCompile(`(?i)(api[_-]?key|secret|token|password)\s*[:=]\s*\S+`),
}

// Redactor masks a fixed set of literal secrets plus well-known credential
// patterns.
type Redactor struct {
	secrets []string
}

// New returns a Redactor that also masks each non-empty literal secret.
func New(secrets ...string) *Redactor {
	r := &Redactor{}
	for _, s := range secrets {
		if s != "" {
			r.secrets = append(r.secrets, s)
		}
	}
	return r
}

// String returns text with every secret replaced by [REDACTED]. A nil
// Redactor still applies the patterns.
func (r *Redactor) String(text string) string {
	if r != nil {
		for _, s := range r.secrets {
			text = strings.ReplaceAll(text, s, mask)
		}
	}
	for _, p := range patterns {
		text = p.ReplaceAllString(text, mask)
	}
	return text
}

// Error is String applied to err.Error(); nil yields "".
func (r *Redactor) Error(err error) string {
	if err == nil {
		return ""
	}
	return r.String(err.Error())
}
