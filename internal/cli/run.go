package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/tally/internal/presentation/tui"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/keymap"
	"github.com/aretw0/tally/pkg/runner"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Line      bool   // force line mode even on a terminal
	SessionID string // persist the session under this ID
	Fresh     bool   // discard the stored session before starting
	Banner    bool

	Input  io.Reader
	Output io.Writer
}

func (o RunOptions) input() io.Reader {
	if o.Input != nil {
		return o.Input
	}
	return os.Stdin
}

func (o RunOptions) output() io.Writer {
	if o.Output != nil {
		return o.Output
	}
	return os.Stdout
}

// interactive reports whether the full-screen calculator can be used.
func (o RunOptions) interactive() bool {
	if o.Line {
		return false
	}
	f, ok := o.input().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute runs a local calculator session, full-screen on a terminal and
// line by line otherwise.
func Execute(ctx context.Context, stack *Stack, opts RunOptions) error {
	if opts.Fresh && opts.SessionID != "" {
		if err := stack.Sessions.Delete(ctx, opts.SessionID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			return fmt.Errorf("reset session: %w", err)
		}
		stack.Logger.Info("Session reset", "session_id", opts.SessionID)
	}

	if opts.interactive() {
		return runInteractive(ctx, stack, opts)
	}
	return runLines(ctx, stack, opts)
}

func runInteractive(ctx context.Context, stack *Stack, opts RunOptions) error {
	modelOpts := []tui.ModelOption{tui.WithHelp(keyHelp())}
	if opts.SessionID != "" {
		state, err := stack.Sessions.LoadOrStart(ctx, opts.SessionID)
		if err != nil {
			return err
		}
		modelOpts = append(modelOpts,
			tui.WithState(state),
			tui.WithPersistence(stack.Store, opts.SessionID),
		)
	}

	if opts.Banner {
		tui.PrintBanner(opts.output())
	}

	final, err := tui.Run(ctx, tui.NewModel(ctx, stack.Engine, modelOpts...))
	if err != nil {
		return err
	}
	return final.Err()
}

func runLines(ctx context.Context, stack *Stack, opts RunOptions) error {
	out := opts.output()
	runnerOpts := []runner.Option{
		runner.WithInput(opts.input()),
		runner.WithOutput(out),
		runner.WithLogger(stack.Logger),
		runner.WithMaxInputSize(stack.MaxInputSize),
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		profile := termenv.NewOutput(f).Profile
		runnerOpts = append(runnerOpts,
			runner.WithRenderer(tui.ColorRenderer(profile)),
			runner.WithPrompt("> "),
		)
		if opts.Banner {
			tui.PrintBannerWithProfile(out, profile)
		}
	}

	if opts.SessionID != "" {
		runnerOpts = append(runnerOpts,
			runner.WithStore(stack.Store),
			runner.WithSessionID(opts.SessionID),
		)
	}

	err := runner.NewRunner(runnerOpts...).Run(ctx, stack.Engine)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// keyHelp renders the key reference for the terminal, falling back to raw markdown.
func keyHelp() string {
	md := keymap.Markdown()
	render, err := tui.NewRenderer()
	if err != nil {
		return md
	}
	out, err := render(md)
	if err != nil {
		return md
	}
	return out
}

// RenderKeys writes the key reference to w.
func RenderKeys(w io.Writer, plain bool) error {
	if plain {
		_, err := io.WriteString(w, keymap.Markdown())
		return err
	}
	_, err := io.WriteString(w, keyHelp())
	return err
}
