package evaluator

import (
	"errors"
	"fmt"

	"github.com/aretw0/tally/pkg/domain"
)

var (
	// ErrInvalidCharacter is returned when the text contains a character outside the arithmetic alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrSyntax is returned for malformed expressions.
	ErrSyntax = errors.New("syntax error")
	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonFinite is returned when an intermediate or final value overflows to infinity.
	ErrNonFinite = errors.New("non-finite result")
)

// fail builds an error matching both domain.ErrEvaluation and the given kind.
func fail(kind error, offset int, format string, args ...any) error {
	return fmt.Errorf("%w: %w at offset %d: %s", domain.ErrEvaluation, kind, offset, fmt.Sprintf(format, args...))
}
