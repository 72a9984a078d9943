package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorBrand   = colorPink
	colorError   = colorRed
	colorSuccess = colorGreen
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	bannerStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorLavender).
				Bold(true)

	missingStyle = lipgloss.NewStyle().Foreground(colorYellow)

	totalStyle = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)

	menuStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	promptStyle = lipgloss.NewStyle().Foreground(colorTeal)

	statusOKStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)
)
