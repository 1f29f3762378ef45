package dashboard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lightworkai/kycmon/internal/config"
)

// Palette holds every color the dashboard draws with.
type Palette struct {
	Accent    lipgloss.Color // active nav marker, active tab underline
	Bar       lipgloss.Color // filled mini-bar cells, alert bars
	BarEmpty  lipgloss.Color // unfilled mini-bar cells, rules
	Critical  lipgloss.Color
	Warning   lipgloss.Color
	Healthy   lipgloss.Color
	Improving lipgloss.Color
	Neutral   lipgloss.Color // unknown status, unclassified change
	Zero      lipgloss.Color // zero difference, muted text

	PassRateLine lipgloss.Color
	TargetLine   lipgloss.Color

	Text      lipgloss.Color
	TextDim   lipgloss.Color
	Link      lipgloss.Color // transaction names
	BadgeFg   lipgloss.Color // project badges
	BadgeBg   lipgloss.Color
	Border    lipgloss.Color
	SidebarBg lipgloss.Color
	ActiveBg  lipgloss.Color
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		Accent:    lipgloss.Color("#1fa9f4"),
		Bar:       lipgloss.Color("#4a5568"),
		BarEmpty:  lipgloss.Color("#e0e0e0"),
		Critical:  lipgloss.Color("#f55459"),
		Warning:   lipgloss.Color("#f5a623"),
		Healthy:   lipgloss.Color("#3fb950"),
		Improving: lipgloss.Color("#1f6feb"),
		Neutral:   lipgloss.Color("#6e7781"),
		Zero:      lipgloss.Color("#666666"),

		PassRateLine: lipgloss.Color("#ef4444"),
		TargetLine:   lipgloss.Color("#3fb950"),

		Text:      lipgloss.Color("#f0f0f0"),
		TextDim:   lipgloss.Color("#888888"),
		Link:      lipgloss.Color("#0969da"),
		BadgeFg:   lipgloss.Color("#92400e"),
		BadgeBg:   lipgloss.Color("#fef3c7"),
		Border:    lipgloss.Color("#d0d7de"),
		SidebarBg: lipgloss.Color("#1e1e1e"),
		ActiveBg:  lipgloss.Color("#2d2d2d"),
	}
}

// PaletteFromConfig applies theme overrides from the config file on top of
// the built-in colors. Empty entries keep the default.
func PaletteFromConfig(tc config.ThemeConfig) Palette {
	p := DefaultPalette()
	override := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	override(&p.Accent, tc.Accent)
	override(&p.Bar, tc.Bar)
	override(&p.BarEmpty, tc.BarEmpty)
	override(&p.Critical, tc.Critical)
	override(&p.Warning, tc.Warning)
	override(&p.Healthy, tc.Healthy)
	override(&p.Improving, tc.Improving)
	override(&p.Neutral, tc.Neutral)
	return p
}

// Theme is a palette plus the styles derived from it. Build it once with
// NewTheme and pass it to every render helper.
type Theme struct {
	Palette Palette

	Title        lipgloss.Style
	Wordmark     lipgloss.Style
	SectionTitle lipgloss.Style
	Description  lipgloss.Style
	Card         lipgloss.Style
	Muted        lipgloss.Style
	Value        lipgloss.Style
	HeaderCell   lipgloss.Style
	Link         lipgloss.Style
	Badge        lipgloss.Style
	Selector     lipgloss.Style
	Banner       lipgloss.Style
	Footer       lipgloss.Style

	Sidebar     lipgloss.Style
	BrandMark   lipgloss.Style
	BrandName   lipgloss.Style
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
}

// NewTheme derives the dashboard styles from p.
func NewTheme(p Palette) Theme {
	return Theme{
		Palette: p,

		Title: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		Wordmark: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Italic(true),

		SectionTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		Description: lipgloss.NewStyle().
			Foreground(p.Zero),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			MarginBottom(1),

		Muted: lipgloss.NewStyle().
			Foreground(p.Zero),

		Value: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		HeaderCell: lipgloss.NewStyle().
			Foreground(p.Zero).
			Bold(true),

		Link: lipgloss.NewStyle().
			Foreground(p.Link),

		Badge: lipgloss.NewStyle().
			Foreground(p.BadgeFg).
			Background(p.BadgeBg).
			Bold(true).
			Padding(0, 1),

		Selector: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		Banner: lipgloss.NewStyle().
			Foreground(p.Critical).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Padding(0, 1),

		Sidebar: lipgloss.NewStyle().
			Background(p.SidebarBg).
			Padding(1, 0),

		BrandMark: lipgloss.NewStyle().
			Foreground(p.SidebarBg).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),

		BrandName: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		NavActive: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.ActiveBg).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(p.Accent).
			Padding(0, 1),

		NavInactive: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Border(lipgloss.HiddenBorder(), false, false, false, true).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			Border(lipgloss.ThickBorder(), false, false, true, false).
			BorderForeground(p.Accent),

		TabInactive: lipgloss.NewStyle().
			Foreground(p.Zero).
			Border(lipgloss.HiddenBorder(), false, false, true, false),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),

		HelpTitle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			MarginBottom(1),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			Width(16),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.TextDim),
	}
}

// DefaultTheme returns the theme built from DefaultPalette.
func DefaultTheme() Theme {
	return NewTheme(DefaultPalette())
}
