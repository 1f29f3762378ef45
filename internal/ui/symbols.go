package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Healthy
	SymbolFail     = "✗" // Critical
	SymbolWarning  = "▲" // Warning
	SymbolPending  = "○" // Unknown
	SymbolComplete = "●" // Improving
)
