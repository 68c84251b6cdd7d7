package cli

import "github.com/charmbracelet/lipgloss"

var (
	styleHeading = lipgloss.NewStyle().Bold(true)

	styleLoaded = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")). // Green
			Bold(true)

	styleFallback = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")). // Yellow
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")). // Red
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // Gray
)

var (
	prefixLoaded   = styleLoaded.Render("✓")
	prefixFallback = styleFallback.Render("⚠")
	prefixIdle     = styleDim.Render("·")
	prefixError    = styleError.Render("✗")
)
