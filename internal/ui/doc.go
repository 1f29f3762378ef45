// Package ui provides the styled plain-text output used outside the
// dashboard, mainly by the snapshot command.
//
// # Components Overview
//
//	Header          - Title, subtitle and divider at the top of a report
//	RenderSparkline - One-line block graph of a series
//	Table           - Non-interactive tables built on the Bubbles table
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Healthy checks, improvements
//	ColorError     (red)    - Critical checks, regressions
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Accents, series graphs
//	ColorMuted     (gray)   - Secondary text
//	ColorSecondary (blue)   - Improving checks
//
// Color output follows the lipgloss color profile, which the CLI sets from
// --no-color and output.color.
//
// # Symbols
//
//	SymbolSuccess  (checkmark) - Healthy
//	SymbolFail     (X)         - Critical
//	SymbolWarning  (triangle)  - Warning
//	SymbolComplete (filled)    - Improving
//	SymbolPending  (circle)    - Unknown status
package ui
