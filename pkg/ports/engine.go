package ports

import (
	"context"

	"github.com/aretw0/tally/pkg/domain"
)

// StatelessEngine defines the interface for calculator cores that do not maintain internal state.
// This is the primary interface used by adapters (e.g., HTTP, MCP) that manage state externally or per-request.
type StatelessEngine interface {
	// Start returns the state of a fresh session.
	Start() *domain.State

	// Navigate applies input events to a state, returning the new state.
	Navigate(ctx context.Context, state *domain.State, events ...domain.Event) (*domain.State, error)

	// Press translates raw key names into events and applies them.
	Press(ctx context.Context, state *domain.State, keys ...string) (*domain.State, error)

	// Render calculates the display for a given state without advancing it.
	Render(ctx context.Context, state *domain.State) domain.DisplayState

	// Evaluate computes a standalone expression.
	Evaluate(ctx context.Context, expression string) (float64, error)

	// Format renders a value with the engine's display precision.
	Format(v float64) string
}
