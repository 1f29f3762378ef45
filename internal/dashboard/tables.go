package dashboard

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lightworkai/kycmon/internal/health"
)

// Column headers for the three dashboard tables.
var (
	checkHeaders       = []string{"PROJECT", "LAST 8W", "8W AVG", "LAST 7 DAYS", "DIFFERENCE"}
	transactionHeaders = []string{"★ KEY TRANSACTION", "PROJECT", "LAST 8W", "LAST 7 DAYS", "CHANGE"}
	alertRuleHeaders   = []string{"ALERT RULE", "PROJECT", "LAST 8W AVERAGE", "THIS WEEK", "DIFFERENCE"}
)

// newTable returns a table with only a rule under the header, matching the
// borderless tables of the dashboard cards. A positive width fits the
// columns to it; zero keeps their natural widths.
func newTable(theme Theme, width int, headers []string, align []lipgloss.Position) *table.Table {
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Palette.BarEmpty)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderRow(false).
		BorderHeader(true).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cellStyle
			if col < len(align) {
				s = s.Align(align[col])
			}
			if row == table.HeaderRow {
				return theme.HeaderCell.Inherit(s)
			}
			return s
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t
}

// renderCheckTable renders the sub-check health table.
func renderCheckTable(rows []health.CheckHealthRow, width int, theme Theme) string {
	t := newTable(theme, width, checkHeaders, []lipgloss.Position{
		lipgloss.Left, lipgloss.Right, lipgloss.Center, lipgloss.Right, lipgloss.Right,
	})

	p := theme.Palette
	for _, r := range rows {
		status := lipgloss.NewStyle().Foreground(p.StatusColor(r.Status)).Render("●")
		name := status + " " + lipgloss.NewStyle().Foreground(p.Text).Bold(true).Render(r.Check) +
			"\n  " + theme.Muted.Render(r.Project)
		diff := lipgloss.NewStyle().
			Foreground(p.DifferenceColor(r.Difference)).
			Bold(true).
			Render(DifferenceText(r.Difference))

		t.Row(
			name,
			RenderMiniBarChart(r.Bars, theme),
			theme.Value.Render(formatPercent(r.Last8w)),
			theme.Value.Render(formatPercent(r.Last7d)),
			diff,
		)
	}
	return t.Render()
}

// renderTransactionTable renders the key transaction table.
func renderTransactionTable(rows []health.TransactionRow, width int, theme Theme) string {
	t := newTable(theme, width, transactionHeaders, []lipgloss.Position{
		lipgloss.Left, lipgloss.Left, lipgloss.Center, lipgloss.Center, lipgloss.Right,
	})

	p := theme.Palette
	for _, r := range rows {
		change := lipgloss.NewStyle().
			Foreground(p.ChangeColor(r.Change)).
			Bold(true).
			Render(r.Change)

		t.Row(
			theme.Link.Render(r.Transaction),
			theme.Badge.Render(r.Project),
			RenderMiniBarChart(r.Bars8w, theme),
			RenderMiniBarChart(r.Bars7d, theme),
			change,
		)
	}
	return t.Render()
}

// renderAlertRuleTable renders the alert rule table. Differences are always
// drawn in the critical color.
func renderAlertRuleTable(rows []health.AlertRuleRow, width int, theme Theme) string {
	t := newTable(theme, width, alertRuleHeaders, []lipgloss.Position{
		lipgloss.Left, lipgloss.Left, lipgloss.Right, lipgloss.Right, lipgloss.Right,
	})

	diffStyle := lipgloss.NewStyle().Foreground(theme.Palette.Critical).Bold(true)
	for _, r := range rows {
		t.Row(
			lipgloss.NewStyle().Foreground(theme.Palette.Text).Render(r.Rule),
			theme.Badge.Render(r.Project),
			theme.Value.Render(strconv.FormatFloat(r.Last8wAvg, 'f', -1, 64)),
			theme.Value.Render(strconv.Itoa(r.ThisWeek)),
			diffStyle.Render(r.Difference),
		)
	}
	return t.Render()
}
