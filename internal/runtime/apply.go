package runtime

import (
	"context"
	"time"

	"github.com/aretw0/tally/pkg/domain"
)

// Apply dispatches a single input event and fires the lifecycle hooks.
// Evaluation failures on equals are not errors here: they are reflected in the display.
// Only malformed events return an error, and they leave the buffer untouched.
func (e *Engine) Apply(ctx context.Context, ev domain.Event) error {
	if err := ev.Validate(); err != nil {
		return err
	}

	accepted := true
	switch ev.Type {
	case domain.EventDigit:
		if err := e.AppendDigit(ev.Value[0]); err != nil {
			return err
		}
	case domain.EventDot:
		accepted = e.AppendDot()
	case domain.EventOperator:
		ok, err := e.AppendOperator(ev.Value[0])
		if err != nil {
			return err
		}
		accepted = ok
	case domain.EventBackspace:
		e.Backspace()
	case domain.EventClear:
		e.Clear()
	case domain.EventEquals:
		before := e.expr
		v, err := e.ConfirmEquals()
		if err != nil {
			e.logger.Debug("Equals rejected", "expression", before, "err", err)
		}
		if e.hooks.OnEvaluate != nil {
			e.hooks.OnEvaluate(ctx, &domain.EvaluateEvent{
				EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.HookEvaluate},
				Expression: before,
				Value:      v,
				Err:        err,
			})
		}
	}

	if !accepted {
		e.logger.Debug("Input ignored", "event", ev.String(), "expression", e.expr)
	}
	if e.hooks.OnInput != nil {
		e.hooks.OnInput(ctx, &domain.InputEvent{
			EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.HookInput},
			Event:      ev,
			Accepted:   accepted,
			Expression: e.expr,
		})
	}
	return nil
}
