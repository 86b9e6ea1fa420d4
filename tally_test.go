package tally_test

import (
	"context"
	"testing"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Press(t *testing.T) {
	eng := tally.New()
	ctx := context.Background()

	state, err := eng.Press(ctx, eng.Start(), "1", "+", "2", "-", "Backspace")
	require.NoError(t, err)
	assert.Equal(t, "1+2", state.Expression)
	assert.Equal(t, domain.DisplayState{Expression: "1+2", Result: "3"}, eng.Render(ctx, state))

	state, err = eng.Press(ctx, state, "Enter", "5")
	require.NoError(t, err)
	assert.Equal(t, "35", state.Expression)
}

func TestEngine_Press_UnknownKeysSkipped(t *testing.T) {
	eng := tally.New()
	state, err := eng.Press(context.Background(), eng.Start(), "4", "F5", "x", "2")
	require.NoError(t, err)
	assert.Equal(t, "42", state.Expression)
}

func TestEngine_Navigate_DoesNotMutateInput(t *testing.T) {
	eng := tally.New()
	ctx := context.Background()

	before := &domain.State{Expression: "7", LastInput: domain.InputDigit}
	after, err := eng.Navigate(ctx, before, domain.Operator('*'), domain.Digit('6'), domain.Equals())
	require.NoError(t, err)
	assert.Equal(t, "42", after.Expression)
	assert.Equal(t, "7", before.Expression)
}

func TestEngine_Navigate_InvalidEventAbortsBatch(t *testing.T) {
	eng := tally.New()
	state, err := eng.Navigate(context.Background(), eng.Start(),
		domain.Digit('1'),
		domain.Event{Type: "memory_plus"},
	)
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)
	assert.Nil(t, state)
}

func TestEngine_Navigate_Canceled(t *testing.T) {
	eng := tally.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eng.Navigate(ctx, eng.Start(), domain.Digit('1'))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_FailedConfirmSurvivesRoundTrip(t *testing.T) {
	eng := tally.New()
	ctx := context.Background()

	state, err := eng.Press(ctx, eng.Start(), "9", "/", "0", "=")
	require.NoError(t, err)
	assert.True(t, state.Failed)
	assert.Equal(t, domain.ResultError, eng.Render(ctx, state).Result)

	state, err = eng.Press(ctx, state, "c")
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayState{Expression: "0", Result: ""}, eng.Render(ctx, state))
}

func TestEngine_Evaluate(t *testing.T) {
	eng := tally.New()
	ctx := context.Background()

	v, err := eng.Evaluate(ctx, "2*(3+4)")
	require.NoError(t, err)
	assert.Equal(t, 14.0, v)

	v, err = eng.Evaluate(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = eng.Evaluate(ctx, "50%")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	_, err = eng.Evaluate(ctx, "3/0")
	assert.ErrorIs(t, err, domain.ErrEvaluation)
}

func TestEngine_WithPrecision(t *testing.T) {
	eng := tally.New(tally.WithPrecision(3))
	assert.Equal(t, 3, eng.Precision())
	assert.Equal(t, "0.667", eng.Format(2.0/3))
}

func TestEngine_WithLifecycleHooks(t *testing.T) {
	var accepted, ignored int
	eng := tally.New(tally.WithLifecycleHooks(domain.LifecycleHooks{
		OnInput: func(ctx context.Context, e *domain.InputEvent) {
			if e.Accepted {
				accepted++
			} else {
				ignored++
			}
		},
	}))

	_, err := eng.Press(context.Background(), eng.Start(), "/", "8", ".", ".")
	require.NoError(t, err)
	assert.Equal(t, 2, accepted)
	assert.Equal(t, 2, ignored)
}
