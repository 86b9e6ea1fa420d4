package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/ports"
	tea "github.com/charmbracelet/bubbletea"
)

// quitKeys end the program.
var quitKeys = map[string]bool{"ctrl+c": true, "ctrl+d": true, "q": true}

// Model is the Bubble Tea model of the interactive calculator.
type Model struct {
	ctx       context.Context
	engine    ports.StatelessEngine
	state     *domain.State
	store     ports.StateStore
	sessionID string

	help     string
	showHelp bool
	err      error
	quitting bool
}

// ModelOption configures the Model.
type ModelOption func(*Model)

// WithState resumes from an existing state.
func WithState(state *domain.State) ModelOption {
	return func(m *Model) {
		if state != nil {
			m.state = state
		}
	}
}

// WithPersistence saves the session after every accepted key.
func WithPersistence(store ports.StateStore, sessionID string) ModelOption {
	return func(m *Model) {
		m.store = store
		m.sessionID = sessionID
	}
}

// WithHelp sets the text toggled by "?".
func WithHelp(help string) ModelOption {
	return func(m *Model) {
		m.help = help
	}
}

// NewModel creates a calculator model on a fresh session.
func NewModel(ctx context.Context, engine ports.StatelessEngine, opts ...ModelOption) Model {
	m := Model{
		ctx:    ctx,
		engine: engine,
		state:  engine.Start(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the current session state.
func (m Model) State() *domain.State {
	return m.state
}

// Err returns the last persistence or engine error, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if quitKeys[key] {
		m.quitting = true
		return m, tea.Quit
	}
	if key == "?" {
		m.showHelp = !m.showHelp
		return m, nil
	}

	next, err := m.engine.Press(m.ctx, m.state, key)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.state = next
	m.err = nil

	if m.store != nil {
		if err := m.store.Save(m.ctx, m.sessionID, m.state); err != nil {
			m.err = fmt.Errorf("save failed: %w", err)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.engine.Render(m.ctx, m.state)

	result := ResultStyle.Width(displayWidth).Render(view.Result)
	if view.Result == domain.ResultError {
		result = ErrorStyle.Width(displayWidth).Render(view.Result)
	}
	display := FrameStyle.Render(
		ExpressionStyle.Width(displayWidth).Render(view.Expression) + "\n" + result,
	)

	var b strings.Builder
	b.WriteString(display)
	b.WriteString("\n")
	if m.err != nil && !errors.Is(m.err, context.Canceled) {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.showHelp && m.help != "" {
		b.WriteString(m.help)
		b.WriteString("\n")
	}
	b.WriteString(DimStyle.Render("enter/= evaluate • backspace delete • c clear • ? help • q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive program and returns the final model.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return m, nil
	}
	return m, err
}
