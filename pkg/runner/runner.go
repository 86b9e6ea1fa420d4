package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/keymap"
	"github.com/aretw0/tally/pkg/ports"
)

// quitWords end the loop when typed alone on a line.
var quitWords = map[string]bool{"quit": true, "exit": true, ":q": true}

// DisplayRenderer formats a display for output.
type DisplayRenderer func(domain.DisplayState) string

// PlainRenderer prints "expression = result", or just the expression when there is no result.
func PlainRenderer(view domain.DisplayState) string {
	if view.Result == "" {
		return view.Expression
	}
	return view.Expression + " = " + view.Result
}

// Runner drives a calculator session from line-oriented input.
type Runner struct {
	Input     io.Reader
	Output    io.Writer
	Logger    *slog.Logger
	Renderer  DisplayRenderer
	Prompt    string
	Store     ports.StateStore
	SessionID string
	Sanitizer Sanitizer
}

// NewRunner creates a Runner on Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Input:    os.Stdin,
		Output:   os.Stdout,
		Logger:   logging.NewNop(),
		Renderer: PlainRenderer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads lines until EOF, a quit word or ctx cancellation.
// The session is saved after every line when a store is configured.
func (r *Runner) Run(ctx context.Context, engine ports.StatelessEngine) error {
	if r.Store != nil && r.SessionID == "" {
		return errors.New("runner: a session ID is required with a store")
	}

	state, err := r.resolveInitialState(ctx, engine)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(r.Input)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.Prompt != "" {
			fmt.Fprint(r.Output, r.Prompt)
		}
		if !scanner.Scan() {
			break
		}

		line, err := r.Sanitizer.Sanitize(scanner.Text())
		if err != nil {
			r.Logger.Warn("Input rejected", "err", err)
			fmt.Fprintf(r.Output, "rejected: %v\n", err)
			continue
		}
		if quitWords[strings.TrimSpace(line)] {
			return nil
		}

		next, err := engine.Press(ctx, state, keymap.Split(line)...)
		if err != nil {
			return fmt.Errorf("apply error: %w", err)
		}
		state = next

		if err := r.saveState(ctx, state); err != nil {
			return fmt.Errorf("critical persistence error: %w", err)
		}
		fmt.Fprintln(r.Output, r.Renderer(engine.Render(ctx, state)))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read error: %w", err)
	}
	return nil
}

func (r *Runner) resolveInitialState(ctx context.Context, engine ports.StatelessEngine) (*domain.State, error) {
	if r.Store == nil {
		return engine.Start(), nil
	}

	state, err := r.Store.Load(ctx, r.SessionID)
	if err == nil {
		r.Logger.Info("Session resumed", "session_id", r.SessionID, "expression", state.Expression)
		return state, nil
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return engine.Start(), nil
}

func (r *Runner) saveState(ctx context.Context, state *domain.State) error {
	if r.Store == nil {
		return nil
	}
	return r.Store.Save(ctx, r.SessionID, state)
}
