package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CounterTier is the warning level of the live character counter
type CounterTier int

const (
	CounterNormal CounterTier = iota
	CounterWarn
	CounterDanger
)

// Counter thresholds; the counter is cosmetic and never blocks input
const (
	CounterWarnAbove   = 4000
	CounterDangerAbove = 4500
)

func (t CounterTier) String() string {
	switch t {
	case CounterWarn:
		return "warn"
	case CounterDanger:
		return "danger"
	default:
		return "normal"
	}
}

// Length counts characters the way the counter and validation do
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

// isBlank reports runes trimmed from headline edges: whitespace and the
// byte order mark left behind by pasted or piped text
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Validate checks a headline before it is sent. It returns the trimmed text
// on success, or an *Error of kind KindEmptyInput or KindTooLong.
func Validate(text string) (string, error) {
	trimmed := strings.TrimFunc(text, isBlank)
	if trimmed == "" {
		return "", NewError(KindEmptyInput, MsgEmptyInput)
	}
	if Length(trimmed) > MaxTextLength {
		return "", NewError(KindTooLong, MsgTooLong)
	}
	return trimmed, nil
}

// TierFor returns the counter tier for a buffer of count characters
func TierFor(count int) CounterTier {
	switch {
	case count > CounterDangerAbove:
		return CounterDanger
	case count > CounterWarnAbove:
		return CounterWarn
	default:
		return CounterNormal
	}
}
