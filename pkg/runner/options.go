package runner

import (
	"io"
	"log/slog"

	"github.com/aretw0/tally/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithInput sets the source of input lines.
func WithInput(r io.Reader) Option {
	return func(rn *Runner) {
		rn.Input = r
	}
}

// WithOutput sets where displays are written.
func WithOutput(w io.Writer) Option {
	return func(rn *Runner) {
		rn.Output = w
	}
}

// WithStore configures the StateStore for persistence.
func WithStore(store ports.StateStore) Option {
	return func(rn *Runner) {
		rn.Store = store
	}
}

// WithSessionID sets the session ID for persistence context.
// This is required if WithStore is used.
func WithSessionID(id string) Option {
	return func(rn *Runner) {
		rn.SessionID = id
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(rn *Runner) {
		rn.Logger = logger
	}
}

// WithRenderer configures how a display is turned into an output line.
func WithRenderer(renderer DisplayRenderer) Option {
	return func(rn *Runner) {
		rn.Renderer = renderer
	}
}

// WithPrompt sets the prompt written before each line is read.
func WithPrompt(prompt string) Option {
	return func(rn *Runner) {
		rn.Prompt = prompt
	}
}

// WithMaxInputSize bounds each input line in bytes. Longer lines are rejected.
func WithMaxInputSize(n int) Option {
	return func(rn *Runner) {
		rn.Sanitizer = NewSanitizer(n)
	}
}
