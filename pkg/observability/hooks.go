package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/tally/pkg/domain"
)

// Combine fans each lifecycle event out to every non-nil hook in order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInput: func(ctx context.Context, e *domain.InputEvent) {
			for _, h := range hooks {
				if h.OnInput != nil {
					h.OnInput(ctx, e)
				}
			}
		},
		OnEvaluate: func(ctx context.Context, e *domain.EvaluateEvent) {
			for _, h := range hooks {
				if h.OnEvaluate != nil {
					h.OnEvaluate(ctx, e)
				}
			}
		},
	}
}

// LogHooks writes one debug record per input and one info record per evaluation.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInput: func(ctx context.Context, e *domain.InputEvent) {
			logger.DebugContext(ctx, "input",
				"event", e.Event.String(),
				"accepted", e.Accepted,
				"expression", e.Expression,
			)
		},
		OnEvaluate: func(ctx context.Context, e *domain.EvaluateEvent) {
			if e.Err != nil {
				logger.InfoContext(ctx, "evaluate", "expression", e.Expression, "err", e.Err)
				return
			}
			logger.InfoContext(ctx, "evaluate", "expression", e.Expression, "value", e.Value)
		},
	}
}
