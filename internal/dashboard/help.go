package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay renders a centered help box listing every key binding.
func (m Model) renderHelpOverlay() string {
	var lines []string
	lines = append(lines, m.theme.HelpTitle.Render("Keyboard Shortcuts"))

	for i, group := range m.keys.FullHelp() {
		if i > 0 {
			lines = append(lines, "")
		}
		for _, b := range group {
			h := b.Help()
			lines = append(lines, m.theme.HelpKey.Render(h.Key)+m.theme.HelpDesc.Render(h.Desc))
		}
	}

	lines = append(lines, "")
	lines = append(lines, m.theme.Muted.Render("Press ? or esc to close"))

	box := m.theme.HelpBox.Render(strings.Join(lines, "\n"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
	)
}
