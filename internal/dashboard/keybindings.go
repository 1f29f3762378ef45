package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Quit       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	TabUsage   key.Binding
	TabIssues  key.Binding
	TabHealth  key.Binding
	NextTeam   key.Binding
	PrevTeam   key.Binding
	NextRange  key.Binding
	PrevRange  key.Binding
	Refresh    key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Help       key.Binding
	Close      key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	TabUsage: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "usage tab"),
	),
	TabIssues: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "issues tab"),
	),
	TabHealth: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "health tab"),
	),
	NextTeam: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "next team"),
	),
	PrevTeam: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "previous team"),
	),
	NextRange: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "next date range"),
	),
	PrevRange: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "previous date range"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "bottom"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close help"),
	),
}

// ShortHelp implements help.KeyMap for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.NextTeam, k.NextRange, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.TabUsage, k.TabIssues, k.TabHealth},
		{k.NextTeam, k.PrevTeam, k.NextRange, k.PrevRange, k.Refresh},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Help, k.Close, k.Quit},
	}
}

// viewportKeys limits the body viewport to the scroll bindings so its
// defaults (u, d, f, b, space) don't shadow dashboard keys.
func viewportKeys(k keyMap) viewport.KeyMap {
	return viewport.KeyMap{
		Up:       k.ScrollUp,
		Down:     k.ScrollDown,
		PageUp:   k.PageUp,
		PageDown: k.PageDown,
	}
}
