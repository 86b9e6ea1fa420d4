package tally

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/internal/runtime"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/evaluator"
	"github.com/aretw0/tally/pkg/keymap"
)

// Engine is the high-level entry point for the Tally library.
// It is stateless: sessions live in domain.State values owned by the caller,
// so a single Engine can serve any number of sessions concurrently.
type Engine struct {
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	precision int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithPrecision sets the number of decimal places used for display (default: 6).
func WithPrecision(places int) Option {
	return func(e *Engine) {
		e.precision = places
	}
}

// New initializes a new Tally Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{
		logger:    logging.NewNop(),
		precision: evaluator.DefaultPrecision,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// Start creates the state of a fresh session.
func (e *Engine) Start() *domain.State {
	return domain.NewState()
}

// Navigate applies events in order and returns the resulting state.
// The input state is not modified. An invalid event aborts the whole batch.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, events ...domain.Event) (*domain.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rt := e.restore(state)
	for i, ev := range events {
		if err := rt.Apply(ctx, ev); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return rt.State(), nil
}

// Press translates raw key names and applies them.
// Keys without a binding are skipped.
func (e *Engine) Press(ctx context.Context, state *domain.State, keys ...string) (*domain.State, error) {
	events := make([]domain.Event, 0, len(keys))
	for _, key := range keys {
		ev, err := keymap.Translate(key)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownKey) {
				e.logger.Debug("Key ignored", "key", key)
				continue
			}
			return nil, err
		}
		events = append(events, ev)
	}
	return e.Navigate(ctx, state, events...)
}

// Render generates the view for the given state without changing it.
func (e *Engine) Render(ctx context.Context, state *domain.State) domain.DisplayState {
	return e.restore(state).Render()
}

// Evaluate computes an arbitrary expression with the same rules as the engine.
// Empty text evaluates to 0. Errors match domain.ErrEvaluation.
func (e *Engine) Evaluate(ctx context.Context, expression string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	v, err := evaluator.Evaluate(expression)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %w", domain.ErrEvaluation, evaluator.ErrNonFinite)
	}
	return v, nil
}

// Format renders a value the way the display does.
func (e *Engine) Format(v float64) string {
	return evaluator.Format(v, e.precision)
}

// Precision returns the number of decimal places used for display.
func (e *Engine) Precision() int {
	return e.precision
}

func (e *Engine) restore(state *domain.State) *runtime.Engine {
	rt := runtime.NewEngine(
		runtime.WithLogger(e.logger),
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithPrecision(e.precision),
	)
	rt.Restore(state)
	return rt
}
