package runtime

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/evaluator"
)

// Engine is the expression-editing state machine.
// It owns a single expression buffer and is not safe for concurrent use;
// independent instances share nothing.
type Engine struct {
	expr   string
	last   domain.InputKind
	failed bool

	precision int
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithPrecision sets the number of decimal places kept for display and confirmation.
func WithPrecision(places int) EngineOption {
	return func(e *Engine) {
		e.precision = places
	}
}

// NewEngine creates an engine with an empty expression.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		last:      domain.InputNone,
		precision: evaluator.DefaultPrecision,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Restore replaces the engine buffer with a stored snapshot.
// The last input kind is recomputed from the expression.
func (e *Engine) Restore(s *domain.State) {
	if s == nil {
		e.Clear()
		return
	}
	e.expr = s.Expression
	e.last = domain.KindOf(s.Expression)
	e.failed = s.Failed
}

// State returns a snapshot of the engine buffer.
func (e *Engine) State() *domain.State {
	return &domain.State{
		Expression: e.expr,
		LastInput:  e.last,
		Failed:     e.failed,
	}
}

// Expression returns the raw expression buffer.
func (e *Engine) Expression() string {
	return e.expr
}

// LastInput returns the class of the most recently accepted input.
func (e *Engine) LastInput() domain.InputKind {
	return e.last
}

// AppendDigit appends d unconditionally.
func (e *Engine) AppendDigit(d byte) error {
	if !domain.IsDigit(d) {
		return fmt.Errorf("%w: %q is not a digit", domain.ErrInvalidEvent, d)
	}
	e.expr += string(d)
	e.last = domain.InputDigit
	e.failed = false
	return nil
}

// AppendDot starts or continues the decimal part of the current operand.
// It reports false, leaving the buffer untouched, when the operand already has a point.
func (e *Engine) AppendDot() bool {
	operand := e.currentOperand()
	for i := 0; i < len(operand); i++ {
		if operand[i] == '.' {
			return false
		}
	}

	if operand == "" {
		e.expr += "0."
	} else {
		e.expr += "."
	}
	e.last = domain.InputDot
	e.failed = false
	return true
}

// AppendOperator appends op, or replaces a trailing operator or dangling point with it.
// On an empty buffer only '-' is accepted, as the sign of the first operand.
func (e *Engine) AppendOperator(op byte) (bool, error) {
	if !domain.IsOperator(op) {
		return false, fmt.Errorf("%w: %q is not an operator", domain.ErrInvalidEvent, op)
	}

	switch {
	case e.expr == "" && op == '-':
		e.expr = "-"
	case e.expr == "":
		return false, nil
	default:
		lastChar := e.expr[len(e.expr)-1]
		if domain.IsOperator(lastChar) || lastChar == '.' {
			e.expr = e.expr[:len(e.expr)-1] + string(op)
		} else {
			e.expr += string(op)
		}
	}
	e.last = domain.InputOperator
	e.failed = false
	return true, nil
}

// Backspace removes the last character, if any.
func (e *Engine) Backspace() {
	if e.expr != "" {
		e.expr = e.expr[:len(e.expr)-1]
	}
	e.last = domain.KindOf(e.expr)
	e.failed = false
}

// Clear empties the buffer.
func (e *Engine) Clear() {
	e.expr = ""
	e.last = domain.InputNone
	e.failed = false
}

// Evaluate computes the value of the buffer ("0" when empty).
// Errors match domain.ErrEvaluation.
func (e *Engine) Evaluate() (float64, error) {
	v, err := evaluator.Evaluate(e.expr)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %w", domain.ErrEvaluation, evaluator.ErrNonFinite)
	}
	return v, nil
}

// ConfirmEquals replaces the buffer with the rounded value of the expression.
// On failure the buffer is kept and the display shows domain.ResultError until the next accepted edit.
func (e *Engine) ConfirmEquals() (float64, error) {
	v, err := e.Evaluate()
	if err != nil {
		e.failed = true
		return 0, err
	}
	e.expr = evaluator.Format(v, e.precision)
	e.last = domain.InputDigit
	e.failed = false
	return v, nil
}

// Render produces the display with a live preview of the result.
// An empty buffer shows "0" with no result. Rendering has no side effects;
// repeated calls return the same view.
func (e *Engine) Render() domain.DisplayState {
	view := domain.DisplayState{Expression: e.expr}
	if e.expr == "" {
		view.Expression = "0"
		return view
	}
	if e.failed {
		view.Result = domain.ResultError
		return view
	}
	if v, err := e.Evaluate(); err == nil {
		view.Result = evaluator.Format(v, e.precision)
	}
	return view
}

// currentOperand returns the text after the nearest operator, or the whole buffer.
func (e *Engine) currentOperand() string {
	for i := len(e.expr) - 1; i >= 0; i-- {
		if domain.IsOperator(e.expr[i]) {
			return e.expr[i+1:]
		}
	}
	return e.expr
}
