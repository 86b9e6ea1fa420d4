package runtime_test

import (
	"testing"

	"github.com/aretw0/tally/internal/runtime"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeKeys feeds a compact script into the engine: digits, '.', operators,
// '<' for backspace, 'C' for clear and '=' for equals.
func typeKeys(t *testing.T, e *runtime.Engine, script string) {
	t.Helper()
	for i := 0; i < len(script); i++ {
		c := script[i]
		switch {
		case domain.IsDigit(c):
			require.NoError(t, e.AppendDigit(c))
		case c == '.':
			e.AppendDot()
		case domain.IsOperator(c):
			_, err := e.AppendOperator(c)
			require.NoError(t, err)
		case c == '<':
			e.Backspace()
		case c == 'C':
			e.Clear()
		case c == '=':
			_, _ = e.ConfirmEquals()
		default:
			t.Fatalf("unsupported script character %q", c)
		}
	}
}

func TestEngine_Digits(t *testing.T) {
	e := runtime.NewEngine()
	typeKeys(t, e, "9081726354")
	assert.Equal(t, "9081726354", e.Expression())
	assert.Equal(t, domain.InputDigit, e.LastInput())

	err := e.AppendDigit('x')
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)
	assert.Equal(t, "9081726354", e.Expression())
}

func TestEngine_AppendDot(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"empty starts with zero", ".", "0."},
		{"after operator starts with zero", "1+.", "1+0."},
		{"after digits", "12.", "12."},
		{"once per operand", "1..", "1."},
		{"once per operand with digits between", "1.5.", "1.5"},
		{"new operand may have its own point", "1.5*2.", "1.5*2."},
		{"result operand", "2-5=.", "-3."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := runtime.NewEngine()
			typeKeys(t, e, tt.script)
			assert.Equal(t, tt.want, e.Expression())
		})
	}

	t.Run("rejected dot reports false", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "4.")
		assert.False(t, e.AppendDot())
		assert.Equal(t, "4.", e.Expression())
	})
}

func TestEngine_AppendOperator(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"leading minus", "-", "-"},
		{"leading plus ignored", "+", ""},
		{"leading times ignored", "*", ""},
		{"leading divide ignored", "/", ""},
		{"append", "1+", "1+"},
		{"replace previous operator", "1+*", "1*"},
		{"replace repeatedly", "1+-*/", "1/"},
		{"dangling point collapses", "3.+", "3+"},
		{"leading minus replaced", "-*", "*"},
		{"negative operand", "-5*", "-5*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := runtime.NewEngine()
			typeKeys(t, e, tt.script)
			assert.Equal(t, tt.want, e.Expression())
		})
	}

	t.Run("invalid operator", func(t *testing.T) {
		e := runtime.NewEngine()
		_, err := e.AppendOperator('%')
		assert.ErrorIs(t, err, domain.ErrInvalidEvent)
	})

	t.Run("never two operators in a row", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "7+*")
		expr := e.Expression()
		assert.Equal(t, byte('*'), expr[len(expr)-1])
		assert.False(t, domain.IsOperator(expr[len(expr)-2]))
	})
}

func TestEngine_Backspace(t *testing.T) {
	t.Run("removes exactly one character", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "1+2-")
		e.Backspace()
		assert.Equal(t, "1+2", e.Expression())
		assert.Equal(t, domain.InputDigit, e.LastInput())
	})

	t.Run("recomputes last input kind", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "1.5")
		e.Backspace()
		assert.Equal(t, domain.InputDot, e.LastInput())
		typeKeys(t, e, "<+3<")
		assert.Equal(t, "1+", e.Expression())
		assert.Equal(t, domain.InputOperator, e.LastInput())
		typeKeys(t, e, "<<")
		assert.Equal(t, domain.InputNone, e.LastInput())
	})

	t.Run("empty stays empty", func(t *testing.T) {
		e := runtime.NewEngine()
		e.Backspace()
		e.Backspace()
		assert.Equal(t, "", e.Expression())
		assert.Equal(t, domain.InputNone, e.LastInput())
	})
}

func TestEngine_Clear(t *testing.T) {
	e := runtime.NewEngine()
	typeKeys(t, e, "12*3.4")
	e.Clear()
	assert.Equal(t, "", e.Expression())
	assert.Equal(t, domain.InputNone, e.LastInput())
	assert.Equal(t, domain.DisplayState{Expression: "0", Result: ""}, e.Render())
}

func TestEngine_ConfirmEquals(t *testing.T) {
	t.Run("result replaces expression and digits continue it", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "2+2")
		v, err := e.ConfirmEquals()
		require.NoError(t, err)
		assert.Equal(t, 4.0, v)
		assert.Equal(t, domain.DisplayState{Expression: "4", Result: "4"}, e.Render())

		require.NoError(t, e.AppendDigit('5'))
		assert.Equal(t, "45", e.Expression())
	})

	t.Run("rounded result", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "0.1+0.2=")
		assert.Equal(t, "0.3", e.Expression())
		typeKeys(t, e, "C1/3=")
		assert.Equal(t, "0.333333", e.Expression())
	})

	t.Run("negative results chain", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "2-5=*2=")
		assert.Equal(t, "-6", e.Expression())
	})

	t.Run("empty confirms to zero", func(t *testing.T) {
		e := runtime.NewEngine()
		_, err := e.ConfirmEquals()
		require.NoError(t, err)
		assert.Equal(t, "0", e.Expression())
	})

	t.Run("failure keeps expression and shows Error", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "3/0")
		_, err := e.ConfirmEquals()
		assert.ErrorIs(t, err, domain.ErrEvaluation)
		assert.Equal(t, "3/0", e.Expression())
		assert.Equal(t, domain.DisplayState{Expression: "3/0", Result: domain.ResultError}, e.Render())
		// Sticky across renders.
		assert.Equal(t, domain.ResultError, e.Render().Result)
	})

	t.Run("next edit clears Error", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "3/0=<")
		assert.Equal(t, domain.DisplayState{Expression: "3/", Result: ""}, e.Render())
	})

	t.Run("rejected input keeps Error", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "3/0.0=")
		require.Equal(t, domain.ResultError, e.Render().Result)
		assert.False(t, e.AppendDot())
		assert.Equal(t, domain.ResultError, e.Render().Result)
	})

	t.Run("trailing operator is an error", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "3+=")
		assert.Equal(t, "3+", e.Expression())
		assert.Equal(t, domain.ResultError, e.Render().Result)
	})

	t.Run("success never renders Error", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "3/0=")
		typeKeys(t, e, "<4=")
		assert.Equal(t, domain.DisplayState{Expression: "0.75", Result: "0.75"}, e.Render())
	})
}

func TestEngine_Render(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   domain.DisplayState
	}{
		{"empty", "", domain.DisplayState{Expression: "0", Result: ""}},
		{"live preview", "2*3+1", domain.DisplayState{Expression: "2*3+1", Result: "7"}},
		{"trailing operator has no preview", "2*3+", domain.DisplayState{Expression: "2*3+", Result: ""}},
		{"lone minus", "-", domain.DisplayState{Expression: "-", Result: ""}},
		{"negative number", "-3", domain.DisplayState{Expression: "-3", Result: "-3"}},
		{"trailing point evaluates", "3.", domain.DisplayState{Expression: "3.", Result: "3"}},
		{"division by zero has no preview", "3/0", domain.DisplayState{Expression: "3/0", Result: ""}},
		{"rounding", "2/3", domain.DisplayState{Expression: "2/3", Result: "0.666667"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := runtime.NewEngine()
			typeKeys(t, e, tt.script)
			assert.Equal(t, tt.want, e.Render())
			assert.Equal(t, tt.want, e.Render(), "render must be repeatable")
		})
	}
}

func TestEngine_Precision(t *testing.T) {
	e := runtime.NewEngine(runtime.WithPrecision(2))
	typeKeys(t, e, "1/3")
	assert.Equal(t, "0.33", e.Render().Result)
	typeKeys(t, e, "=")
	assert.Equal(t, "0.33", e.Expression())
}

func TestEngine_StateRoundTrip(t *testing.T) {
	e := runtime.NewEngine()
	typeKeys(t, e, "8/0=")
	snap := e.State()
	assert.Equal(t, &domain.State{Expression: "8/0", LastInput: domain.InputDigit, Failed: true}, snap)

	restored := runtime.NewEngine()
	restored.Restore(snap)
	assert.Equal(t, e.Render(), restored.Render())

	restored.Restore(&domain.State{Expression: "1+", LastInput: domain.InputDigit})
	assert.Equal(t, domain.InputOperator, restored.LastInput(), "last input is derived from the expression")

	restored.Restore(nil)
	assert.Equal(t, "", restored.Expression())
}
