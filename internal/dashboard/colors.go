package dashboard

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lightworkai/kycmon/internal/health"
)

// StatusColor returns the color for a sub-check status under the default
// palette. Unknown statuses are gray.
func StatusColor(status health.Status) lipgloss.Color {
	return DefaultPalette().StatusColor(status)
}

// StatusColor returns the color for a sub-check status.
func (p Palette) StatusColor(status health.Status) lipgloss.Color {
	switch status {
	case health.StatusCritical:
		return p.Critical
	case health.StatusWarning:
		return p.Warning
	case health.StatusHealthy:
		return p.Healthy
	case health.StatusImproving:
		return p.Improving
	default:
		return p.Neutral
	}
}

// ChangeColor returns the color for a free-text change description under the
// default palette.
func ChangeColor(change string) lipgloss.Color {
	return DefaultPalette().ChangeColor(change)
}

// ChangeColor colors a change description. "worse" wins over "better" when
// both appear.
func (p Palette) ChangeColor(change string) lipgloss.Color {
	switch {
	case strings.Contains(change, "worse"):
		return p.Critical
	case strings.Contains(change, "better"):
		return p.Healthy
	default:
		return p.Neutral
	}
}

// DifferenceColor returns the color for a signed percentage difference under
// the default palette.
func DifferenceColor(d float64) lipgloss.Color {
	return DefaultPalette().DifferenceColor(d)
}

// DifferenceColor colors a signed difference: red when negative, green when
// positive.
func (p Palette) DifferenceColor(d float64) lipgloss.Color {
	switch {
	case d < 0:
		return p.Critical
	case d > 0:
		return p.Healthy
	default:
		return p.Zero
	}
}

// DifferenceText formats a signed percentage difference with a trend arrow,
// e.g. "-12.5% ↓", "+0.1% ↑" and "0%".
func DifferenceText(d float64) string {
	var b strings.Builder
	if d > 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatFloat(d, 'f', -1, 64))
	b.WriteByte('%')
	switch {
	case d < 0:
		b.WriteString(" ↓")
	case d > 0:
		b.WriteString(" ↑")
	}
	return b.String()
}

// formatPercent renders a percentage the way the tables show it, e.g. "74.2%".
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
