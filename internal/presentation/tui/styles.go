package tui

import "github.com/charmbracelet/lipgloss"

var (
	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
	ExpressionStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Right)
	ResultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Align(lipgloss.Right)
	ErrorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Align(lipgloss.Right)
	DimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// displayWidth is the inner width of the calculator display.
const displayWidth = 28
