package domain

import (
	"context"
	"time"
)

// HookType defines the category of a lifecycle event.
type HookType string

const (
	HookInput    HookType = "input"
	HookEvaluate HookType = "evaluate"
)

// EventBase contains common fields for all lifecycle events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      HookType  `json:"type"`
}

// InputEvent is emitted after an input event has been applied.
type InputEvent struct {
	EventBase
	Event      Event  `json:"event"`
	Accepted   bool   `json:"accepted"` // false when the input was a silent no-op
	Expression string `json:"expression"`
}

// EvaluateEvent is emitted after an explicit equals confirmation.
type EvaluateEvent struct {
	EventBase
	Expression string  `json:"expression"`
	Value      float64 `json:"value,omitempty"`
	Err        error   `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnInput    func(context.Context, *InputEvent)
	OnEvaluate func(context.Context, *EvaluateEvent)
}
