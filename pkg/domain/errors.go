package domain

import "errors"

// ErrEvaluation is the single error kind for expressions that cannot be turned into a number.
// It covers invalid characters, malformed syntax, division by zero and non-finite results.
var ErrEvaluation = errors.New("evaluation error")

// ErrInvalidEvent is returned when an event carries an unknown type or an illegal value.
var ErrInvalidEvent = errors.New("invalid event")

// ErrUnknownKey is returned when a raw key name has no binding.
var ErrUnknownKey = errors.New("unknown key")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")
