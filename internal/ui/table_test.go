package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Check", Width: 20},
		{Title: "Status", Width: 10},
	}
	rows := []table.Row{
		{"image_integrity", "critical"},
		{"face_match", "healthy"},
	}

	view := NewTable(columns, rows).View()

	assert.Contains(t, view, "Check")
	assert.Contains(t, view, "Status")
	assert.Contains(t, view, "image_integrity")
	assert.Contains(t, view, "face_match")
}

func TestNewTable_EmptyRows(t *testing.T) {
	view := NewTable([]TableColumn{{Title: "Name", Width: 20}}, []table.Row{}).View()

	assert.Contains(t, view, "Name")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Rule", Width: 28},
		{Title: "Difference", Width: 12},
	}
	rows := [][]string{
		{"Pass Rate Below 75%", "+85.7% ↑"},
		{"Document Rejection Spike", "+50% ↑"},
	}

	output := RenderSimpleTable(columns, rows)

	assert.Contains(t, output, "Rule")
	assert.Contains(t, output, "Pass Rate Below 75%")
	assert.Contains(t, output, "Document Rejection Spike")
	assert.Contains(t, output, "+50% ↑")
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	output := RenderSimpleTable([]TableColumn{{Title: "Name", Width: 20}}, nil)
	assert.Empty(t, output)
}

func TestFitColumns(t *testing.T) {
	cols := FitColumns(
		[]string{"ID", "Name"},
		[][]string{
			{"1", "short"},
			{"1234", "a much longer name"},
		},
	)

	assert.Equal(t, []TableColumn{
		{Title: "ID", Width: 4},
		{Title: "Name", Width: 18},
	}, cols)
}

func TestFitColumns_ExtraCellsIgnored(t *testing.T) {
	cols := FitColumns([]string{"A"}, [][]string{{"x", "overflow"}})

	assert.Len(t, cols, 1)
	assert.Equal(t, 1, cols[0].Width)
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"pads short", "ab", 4, "ab  "},
		{"exact width", "abcd", 4, "abcd"},
		{"longer than width", "abcdef", 4, "abcdef"},
		{"wide runes", "✓", 3, "✓  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PadRight(tt.input, tt.width))
		})
	}
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
