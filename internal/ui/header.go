package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Title    string // e.g. "KYC Monitoring Snapshot"
	Subtitle string // Optional, e.g. "KYC Verification · Last 8 weeks"
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 60

// RenderHeader renders a title line, optional subtitle and a divider.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorInfo).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary)

	dividerStyle := lipgloss.NewStyle().
		Foreground(ColorMuted)

	var output strings.Builder

	output.WriteString(titleStyle.Render(info.Title))
	output.WriteString("\n")

	if info.Subtitle != "" {
		output.WriteString(subtitleStyle.Render(info.Subtitle))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}
