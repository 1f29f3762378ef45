package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lightworkai/kycmon/internal/health"
	"github.com/lightworkai/kycmon/internal/util"
)

// Section copy shown next to each table.
const (
	passRateTitle       = "Monthly KYC Pass Rate Decline"
	checksTitle         = "Pass Rate Health"
	checksDescription   = "The percentage of KYC attempts that successfully pass both document and face verification checks."
	endpointsTitle      = "Key Endpoints"
	endpointsDesc       = "Success rates for critical KYC verification endpoints over time."
	alertsTitle         = "Metric Alerts Triggered"
	alertsDescription   = "Alerts triggered from the monitoring rules your team configured."
	wordmark            = "LightWork AI"
	sideBySideMinWidth  = 100
	descriptionColWidth = 32
	lineChartHeight     = 12
	barChartHeight      = 6
)

// renderDashboard lays out the sidebar, scrollable body and footer.
func (m Model) renderDashboard() string {
	main := lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.renderFooter(),
	)
	if !m.showSidebar() {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(m.height), main)
}

// StaticView renders the whole dashboard at the given width without a
// viewport, for output that is not a terminal.
func (m Model) StaticView(width int) string {
	m.width = width
	body := m.renderBody(m.mainWidth())
	if !m.showSidebar() {
		return body
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(lipgloss.Height(body)), body)
}

// renderSidebar renders the brand block and navigation at the given height.
func (m Model) renderSidebar(height int) string {
	t := m.theme
	brand := lipgloss.JoinHorizontal(lipgloss.Center,
		t.BrandMark.Render("✓"),
		" ",
		lipgloss.JoinVertical(lipgloss.Left,
			t.BrandName.Render("KYC Verification"),
			lipgloss.NewStyle().Foreground(t.Palette.TextDim).Render("Monitoring"),
		),
	)

	lines := []string{" " + brand, ""}
	for _, e := range navEntries {
		lines = append(lines, RenderNavItem(e.Icon, e.Label, e.Label == activeNavLabel, t))
	}

	return t.Sidebar.
		Width(SidebarWidth).
		Height(max(height-2, 1)).
		Render(strings.Join(lines, "\n"))
}

// renderBody renders the header card and every section at width.
func (m Model) renderBody(width int) string {
	parts := []string{m.renderHeader(width)}

	if m.snapshot == nil {
		msg := "Loading snapshot..."
		if m.err != nil {
			msg = "No data available."
		}
		parts = append(parts, m.theme.Muted.Render(msg))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	s := m.snapshot
	bw := sectionBodyWidth(width)
	parts = append(parts,
		m.renderPassRateCard(s, width),
		m.renderSection(checksTitle, checksDescription, renderCheckTable(s.Checks, bw, m.theme), width),
		m.renderSection(endpointsTitle, endpointsDesc, renderTransactionTable(s.Transactions, bw, m.theme), width),
		m.renderAlertsSection(s, width),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// card renders content in a bordered card whose outer width is width.
func (m Model) card(content string, width int) string {
	return m.theme.Card.Width(max(width-2, 1)).Render(content)
}

// renderHeader renders the title, tabs, selectors and summary line.
func (m Model) renderHeader(width int) string {
	t := m.theme
	inner := max(width-4, 1)

	title := t.Title.Render("Stats")
	mark := t.Wordmark.Render(wordmark)
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(mark), 1)
	titleRow := title + strings.Repeat(" ", gap) + mark

	var tabs []string
	for i, tab := range Tabs() {
		if i > 0 {
			tabs = append(tabs, "    ")
		}
		tabs = append(tabs, RenderTab(tab.Label(), tab == m.selection.Tab, t))
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
	rule := lipgloss.NewStyle().Foreground(t.Palette.BarEmpty).Render(strings.Repeat("─", inner))

	selectors := lipgloss.JoinHorizontal(lipgloss.Top,
		t.Selector.Render("Team: "+m.teamLabel(m.selection.Team)+" ▾"),
		" ",
		t.Selector.Render("Date Range: "+m.selection.DateRange.Label()+" ▾"),
	)

	rows := []string{titleRow, "", tabRow, rule, selectors}
	if line := m.summaryLine(); line != "" {
		rows = append(rows, line)
	}
	if m.loading {
		rows = append(rows, t.Muted.Render("Refreshing..."))
	}
	if m.err != nil {
		rows = append(rows, t.Banner.Render("✗ Fetch failed: "+m.err.Error()))
	}

	return m.card(strings.Join(rows, "\n"), width)
}

// summaryLine condenses the snapshot into one line of header figures.
func (m Model) summaryLine() string {
	if m.snapshot == nil {
		return ""
	}
	s := m.summary
	var parts []string
	if len(m.snapshot.PassRate) > 0 {
		parts = append(parts,
			fmt.Sprintf("pass rate %.1f%% latest, %.1f%% mean", s.PassRateLatest, s.PassRateMean),
			fmt.Sprintf("%d of %d below %g%% target", s.PointsBelowTarget, len(m.snapshot.PassRate), m.target),
		)
	}
	if len(m.snapshot.Alerts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (peak %d)",
			s.AlertsTotal, util.Pluralize(s.AlertsTotal, "alert", "alerts"), s.AlertsPeak))
	}
	parts = append(parts, fmt.Sprintf("%d critical %s",
		s.CriticalChecks, util.Pluralize(s.CriticalChecks, "check", "checks")))

	return m.theme.Muted.Render(strings.Join(parts, " · "))
}

// renderPassRateCard renders the pass-rate trend chart card.
func (m Model) renderPassRateCard(s *health.Snapshot, width int) string {
	inner := max(width-4, 1)
	title := lipgloss.PlaceHorizontal(inner, lipgloss.Center, m.theme.SectionTitle.Render(passRateTitle))
	chart := RenderLineChart(s.PassRate, m.target, inner, lineChartHeight, m.theme)
	return m.card(title+"\n\n"+chart, width)
}

// renderAlertsSection renders the alerts chart and alert rule table.
func (m Model) renderAlertsSection(s *health.Snapshot, width int) string {
	bw := sectionBodyWidth(width)
	chart := RenderBarChart(s.Alerts, bw, barChartHeight, m.theme)
	body := chart + "\n\n" + renderAlertRuleTable(s.AlertRules, bw, m.theme)
	return m.renderSection(alertsTitle, alertsDescription, body, width)
}

// sectionBodyWidth is the content width of a section's body card.
func sectionBodyWidth(width int) int {
	if width < sideBySideMinWidth {
		return max(width-4, 1)
	}
	return max(width-descriptionColWidth-1-4, 1)
}

// renderSection renders a title and description beside body, or above it
// when the main column is narrow.
func (m Model) renderSection(title, description, body string, width int) string {
	t := m.theme
	if width < sideBySideMinWidth {
		desc := t.Description.Width(max(width-4, 1)).Render(description)
		return m.card(t.SectionTitle.Render(title)+"\n"+desc+"\n\n"+body, width)
	}

	descInner := descriptionColWidth - 4
	left := m.card(t.SectionTitle.Render(title)+"\n"+t.Description.Width(descInner).Render(description), descriptionColWidth)
	right := m.card(body, width-descriptionColWidth-1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// renderFooter renders key help on the left and the selection on the right.
func (m Model) renderFooter() string {
	helpView := m.help.View(m.keys)
	status := m.theme.Muted.Render(m.teamLabel(m.selection.Team) + " · " + m.selection.DateRange.Label())

	width := m.mainWidth()
	gap := width - lipgloss.Width(helpView) - lipgloss.Width(status) - 2
	if gap < 1 {
		return m.theme.Footer.Render(helpView)
	}
	return m.theme.Footer.Render(helpView + strings.Repeat(" ", gap) + status)
}

// teamLabel returns the display label for a team id.
func (m Model) teamLabel(team health.Team) string {
	for _, t := range m.teams {
		if t.ID == team {
			return t.Label
		}
	}
	return string(team)
}
