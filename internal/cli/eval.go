package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/ports"
	"github.com/aretw0/tally/pkg/runner"
)

// ErrEvalFailed is returned by Eval when at least one expression has no value.
var ErrEvalFailed = errors.New("one or more expressions failed to evaluate")

// Eval evaluates each expression and writes one result per line.
// Expressions are sanitized but not trimmed, so blank text is a syntax error.
// Failures are written as "Error" and reported once at the end.
func Eval(ctx context.Context, engine ports.StatelessEngine, exprs []string, w io.Writer, sanitizer runner.Sanitizer) error {
	failed := 0
	for _, raw := range exprs {
		v, err := evalOne(ctx, engine, sanitizer, raw)
		if err != nil {
			failed++
			fmt.Fprintln(w, domain.ResultError)
			continue
		}
		fmt.Fprintln(w, engine.Format(v))
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrEvalFailed, failed, len(exprs))
	}
	return nil
}

func evalOne(ctx context.Context, engine ports.StatelessEngine, sanitizer runner.Sanitizer, raw string) (float64, error) {
	expr, err := sanitizer.Sanitize(raw)
	if err != nil {
		return 0, err
	}
	return engine.Evaluate(ctx, expr)
}
