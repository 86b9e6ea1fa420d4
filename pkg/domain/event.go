package domain

import "fmt"

// EventType identifies the kind of input event.
type EventType string

const (
	EventDigit     EventType = "digit"
	EventDot       EventType = "dot"
	EventOperator  EventType = "operator"
	EventBackspace EventType = "backspace"
	EventClear     EventType = "clear"
	EventEquals    EventType = "equals"
)

// Event is a discrete input sent by a presentation layer.
// Value carries the digit or operator character and is empty for the other types.
type Event struct {
	Type  EventType `json:"type" yaml:"type" mapstructure:"type"`
	Value string    `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`
}

// Digit builds a digit event.
func Digit(d byte) Event { return Event{Type: EventDigit, Value: string(d)} }

// Dot builds a decimal point event.
func Dot() Event { return Event{Type: EventDot} }

// Operator builds an operator event.
func Operator(op byte) Event { return Event{Type: EventOperator, Value: string(op)} }

// Backspace builds a backspace event.
func Backspace() Event { return Event{Type: EventBackspace} }

// Clear builds a clear event.
func Clear() Event { return Event{Type: EventClear} }

// Equals builds an equals (confirm) event.
func Equals() Event { return Event{Type: EventEquals} }

// Validate checks that the event type is known and its value is legal for that type.
func (e Event) Validate() error {
	switch e.Type {
	case EventDigit:
		if len(e.Value) != 1 || !IsDigit(e.Value[0]) {
			return fmt.Errorf("%w: digit value %q", ErrInvalidEvent, e.Value)
		}
	case EventOperator:
		if len(e.Value) != 1 || !IsOperator(e.Value[0]) {
			return fmt.Errorf("%w: operator value %q", ErrInvalidEvent, e.Value)
		}
	case EventDot, EventBackspace, EventClear, EventEquals:
		if e.Value != "" {
			return fmt.Errorf("%w: %s takes no value", ErrInvalidEvent, e.Type)
		}
	default:
		return fmt.Errorf("%w: type %q", ErrInvalidEvent, e.Type)
	}
	return nil
}

func (e Event) String() string {
	if e.Value == "" {
		return string(e.Type)
	}
	return string(e.Type) + "(" + e.Value + ")"
}
