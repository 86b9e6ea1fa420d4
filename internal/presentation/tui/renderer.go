package tui

import (
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/runner"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style follows the terminal background.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// ColorRenderer formats line-mode output with the result highlighted.
// Errors are shown in red. With the Ascii profile it matches runner.PlainRenderer.
func ColorRenderer(p termenv.Profile) runner.DisplayRenderer {
	return func(view domain.DisplayState) string {
		if view.Result == "" {
			return view.Expression
		}
		color := "#34d399"
		if view.Result == domain.ResultError {
			color = "#f87171"
		}
		return view.Expression + " = " + termenv.String(view.Result).Foreground(p.Color(color)).Bold().String()
	}
}
