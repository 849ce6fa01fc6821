package classify

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchKind records how a response was resolved.
type MatchKind int

const (
	NoMatch MatchKind = iota
	Exact
	Partial
)

func (k MatchKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Partial:
		return "partial"
	default:
		return "none"
	}
}

// ErrInvalidAnswer is matched by every *InvalidAnswerError.
var ErrInvalidAnswer = errors.New("invalid response format")

// InvalidAnswerError carries the normalized text that matched no phrase.
type InvalidAnswerError struct {
	Text string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid response format: %q", e.Text)
}

func (e *InvalidAnswerError) Is(target error) bool { return target == ErrInvalidAnswer }

// Normalize trims, lowercases and drops one trailing punctuation character.
// ASCII symbols such as + $ ~ | ^ count as punctuation.
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	if r, size := utf8.DecodeLastRuneInString(s); size > 0 && isPunct(r) {
		s = s[:len(s)-size]
	}
	return s
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || (r < utf8.RuneSelf && unicode.IsSymbol(r))
}

// Match resolves already-normalized text to a code. An exact phrase wins;
// otherwise the first phrase in declaration order contained in the text does.
func Match(normalized string) (Code, MatchKind) {
	for _, c := range Codes() {
		if normalized == phrases[c] {
			return c, Exact
		}
	}
	for _, c := range Codes() {
		if strings.Contains(normalized, phrases[c]) {
			return c, Partial
		}
	}
	return 0, NoMatch
}

// Parse normalizes and matches raw model output.
func Parse(raw string) (Code, MatchKind, error) {
	norm := Normalize(raw)
	code, kind := Match(norm)
	if kind == NoMatch {
		return 0, NoMatch, &InvalidAnswerError{Text: norm}
	}
	return code, kind, nil
}
