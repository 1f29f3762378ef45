package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mini bar cells: a full block for a filled period, a low block otherwise.
const (
	miniBarFull = "█"
	miniBarLow  = "▃"
)

// NavEntry is one sidebar navigation entry.
type NavEntry struct {
	Icon  string
	Label string
}

// navEntries is the sidebar navigation. Stats is the page this view renders.
var navEntries = []NavEntry{
	{Icon: "▦", Label: "Projects"},
	{Icon: "⚠", Label: "Issues"},
	{Icon: "ϟ", Label: "Performance"},
	{Icon: "◫", Label: "Releases"},
	{Icon: "◔", Label: "Alerts"},
	{Icon: "⌕", Label: "Discover"},
	{Icon: "↗", Label: "Dashboards"},
	{Icon: "≡", Label: "Stats"},
	{Icon: "⚙", Label: "Settings"},
}

// activeNavLabel is the sidebar entry highlighted as the current page.
const activeNavLabel = "Stats"

// RenderNavItem renders a sidebar entry. The active entry carries an accent
// bar on its left edge and bright text.
func RenderNavItem(icon, label string, active bool, theme Theme) string {
	text := icon + "  " + label
	if active {
		return theme.NavActive.Render(text)
	}
	return theme.NavInactive.Render(text)
}

// RenderTab renders a header tab label, bold with an accent underline when
// active.
func RenderTab(label string, active bool, theme Theme) string {
	if active {
		return theme.TabActive.Render(label)
	}
	return theme.TabInactive.Render(label)
}

// RenderMiniBarChart renders one cell per value. A value of exactly 1 is a
// full block in the bar color, anything else a low block in the empty color.
func RenderMiniBarChart(bars []int, theme Theme) string {
	full := lipgloss.NewStyle().Foreground(theme.Palette.Bar)
	low := lipgloss.NewStyle().Foreground(theme.Palette.BarEmpty)

	var b strings.Builder
	for _, v := range bars {
		if v == 1 {
			b.WriteString(full.Render(miniBarFull))
		} else {
			b.WriteString(low.Render(miniBarLow))
		}
	}
	return b.String()
}
