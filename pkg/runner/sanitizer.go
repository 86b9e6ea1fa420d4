package runner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// DefaultMaxInputSize bounds one line, expression or key name in bytes.
const DefaultMaxInputSize = 4096

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// Sanitizer cleans calculator input before it reaches the engine.
// The zero value applies DefaultMaxInputSize.
type Sanitizer struct {
	maxSize int
}

// NewSanitizer returns a Sanitizer rejecting input longer than maxSize bytes.
// A non-positive maxSize selects DefaultMaxInputSize.
func NewSanitizer(maxSize int) Sanitizer {
	return Sanitizer{maxSize: maxSize}
}

// MaxSize reports the effective limit.
func (s Sanitizer) MaxSize() int {
	if s.maxSize <= 0 {
		return DefaultMaxInputSize
	}
	return s.maxSize
}

// Sanitize rejects oversized or malformed input, then removes terminal
// escape sequences (arrow keys, colors) and other control characters.
// Newline, tab and carriage return survive as whitespace.
func (s Sanitizer) Sanitize(input string) (string, error) {
	// Rejecting rather than truncating keeps the resulting state deterministic.
	if limit := s.MaxSize(); len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}
	if !hasControl(input) {
		return input, nil
	}

	stripped := ansi.Strip(input)
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// SanitizeAll applies Sanitize to every element, failing on the first rejection.
func (s Sanitizer) SanitizeAll(inputs []string) ([]string, error) {
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		clean, err := s.Sanitize(in)
		if err != nil {
			return nil, err
		}
		out = append(out, clean)
	}
	return out, nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) && !isSafeControl(r) {
			return true
		}
	}
	return false
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}
