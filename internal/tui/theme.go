package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the deck uses.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorLavender lipgloss.Color = "#b4befe"
	colorPink     lipgloss.Color = "#f5c2e7"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorCrust    lipgloss.Color = "#11111b"
)

const (
	colorAccept = colorGreen
	colorReject = colorRed
	colorFocus  = colorLavender
	colorBrand  = colorPink
	colorWarn   = colorYellow
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	subtleStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusBarStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	warnStyle      = lipgloss.NewStyle().Foreground(colorWarn)
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFocus).Padding(0, 1)
	peekStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), false, true, true, true).BorderForeground(colorSurface1).Foreground(colorOverlay0).Padding(0, 1)
	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	tagStyle       = lipgloss.NewStyle().Foreground(colorCrust).Background(colorLavender).Padding(0, 1)
	shadowStyle    = lipgloss.NewStyle().Foreground(colorSurface1)
	stampAccept    = lipgloss.NewStyle().Bold(true).Foreground(colorCrust).Background(colorAccept).Padding(0, 1)
	stampReject    = lipgloss.NewStyle().Bold(true).Foreground(colorCrust).Background(colorReject).Padding(0, 1)
)
