// Package dashboard implements the KYC monitoring dashboard as a Bubble Tea
// program.
//
// The view shows a pass-rate trend chart, a sub-check health table, a key
// transaction table and an alerts-triggered chart with its alert-rule table,
// framed by a navigation sidebar and a header carrying tabs and selectors.
//
// # Architecture
//
// The package follows The Elm Architecture (Model-Update-View):
//
//   - Model: selection (team, date range, tab), current snapshot, layout
//   - Update: keystrokes, window resizes, snapshot fetch results
//   - View: renders sidebar, header and the scrollable body
//
// # Data Flow
//
// The model never owns data. It asks a health.Provider for a snapshot on
// start, on explicit refresh and whenever the team or date range changes:
//
//  1. fetchCmd() calls Provider.FetchHealthSnapshot with a timeout
//  2. snapshotMsg arrives tagged with the team and date range it was for
//  3. results for a selection that has since changed are discarded
//  4. View() re-renders with the new snapshot
//
// A failed fetch keeps the previous snapshot on screen under an error banner.
//
// # Presentational Helpers
//
// The render helpers are pure functions of their inputs and a Theme:
//
//	RenderNavItem      - sidebar entry with active marker
//	RenderTab          - header tab, accent underline when active
//	RenderMiniBarChart - one cell per value, full block for 1
//	RenderLineChart    - pass-rate trend with dashed target line
//	RenderBarChart     - alerts per date
//
// StatusColor, ChangeColor, DifferenceText and DifferenceColor hold the
// status and trend coloring rules used by the tables.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C      - Quit
//	Tab, Shift+Tab - Cycle tabs
//	1 / 2 / 3      - Usage / Issues / Health
//	t / T          - Next / previous team
//	d / D          - Next / previous date range
//	r              - Re-fetch snapshot
//	j/k, ↑/↓       - Scroll
//	?              - Toggle help overlay
package dashboard
