package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorGray   = lipgloss.Color("245") // Gray - secondary text
)

var (
	// styleWarnTitle for warning section headers.
	styleWarnTitle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)

	// styleErrTitle for the conflict section header.
	styleErrTitle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)

	// styleDetail for the indented lines under a warning header.
	styleDetail = lipgloss.NewStyle().Foreground(colorGray)
)
