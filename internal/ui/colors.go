package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// StatusColor maps a sub-check status name to its ANSI color.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "critical":
		return ColorError
	case "warning":
		return ColorWarning
	case "healthy":
		return ColorSuccess
	case "improving":
		return ColorSecondary
	default:
		return ColorMuted
	}
}

// StatusSymbol maps a sub-check status name to its symbol.
func StatusSymbol(status string) string {
	switch status {
	case "critical":
		return SymbolFail
	case "warning":
		return SymbolWarning
	case "healthy":
		return SymbolSuccess
	case "improving":
		return SymbolComplete
	default:
		return SymbolPending
	}
}
