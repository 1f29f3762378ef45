package dashboard

import (
	"strings"
	"testing"

	"github.com/lightworkai/kycmon/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePassRates() []health.PassRatePoint {
	return []health.PassRatePoint{
		{Week: "2017-05", PassRate: 82.8},
		{Week: "2017-06", PassRate: 90.9},
		{Week: "2017-07", PassRate: 84.5},
		{Week: "2017-08", PassRate: 79.0},
		{Week: "2017-09", PassRate: 69.7},
		{Week: "2017-10", PassRate: 58.7},
	}
}

func sampleAlerts() []health.AlertCountPoint {
	return []health.AlertCountPoint{
		{Date: "Oct 1", Alerts: 2},
		{Date: "Oct 8", Alerts: 0},
		{Date: "Oct 15", Alerts: 1},
		{Date: "Oct 22", Alerts: 4},
		{Date: "Oct 29", Alerts: 11},
		{Date: "Nov 5", Alerts: 8},
		{Date: "Nov 12", Alerts: 6},
		{Date: "Nov 19", Alerts: 7},
	}
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, 0.0, normalizeValue(50, 50, 100))
	assert.Equal(t, 1.0, normalizeValue(100, 50, 100))
	assert.Equal(t, 0.5, normalizeValue(75, 50, 100))
	assert.Equal(t, 0.5, normalizeValue(10, 10, 10))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-3, 10))
	assert.Equal(t, 10, clampInt(12, 10))
	assert.Equal(t, 4, clampInt(4, 10))
}

func TestNiceMax(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 4},
		{-1, 4},
		{1, 4},
		{4, 4},
		{5, 8},
		{11, 12},
		{100, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, niceMax(tt.in), "niceMax(%d)", tt.in)
	}
}

func TestCanvas(t *testing.T) {
	c := newCanvas(5, 2)
	c.set(0, 0, 'a', "")
	c.set(10, 10, 'z', "") // dropped
	c.text(3, 1, "xyz", "", false)

	lines := c.lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a    ", lines[0])
	assert.Equal(t, "   xy", lines[1])
}

func TestPlaceLabel(t *testing.T) {
	assert.Equal(t, 8, placeLabel(10, 5, 0, 20))
	assert.Equal(t, 0, placeLabel(1, 5, 0, 20))
	assert.Equal(t, 15, placeLabel(19, 5, 0, 20))
}

func TestRenderLineChart(t *testing.T) {
	theme := DefaultTheme()
	out := RenderLineChart(samplePassRates(), 85, 80, 12, theme)

	assert.Contains(t, out, "Target (85%)")
	assert.Contains(t, out, "Pass Rate")
	for _, pt := range samplePassRates() {
		assert.Contains(t, out, pt.Week)
	}
	for _, label := range []string{"82.8%", "90.9%", "84.5%", "79.0%", "69.7%", "58.7%"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "100")
	assert.Contains(t, out, " 50")
	// One marker per point plus the legend sample.
	assert.Equal(t, 7, strings.Count(out, "●"))
	assert.Contains(t, out, "╌")
	assert.Contains(t, out, fgSeq(theme.Palette.PassRateLine))
	assert.Contains(t, out, fgSeq(theme.Palette.TargetLine))
}

func TestRenderLineChart_TargetOutsideDomain(t *testing.T) {
	out := RenderLineChart(samplePassRates(), 20, 80, 12, DefaultTheme())

	assert.Contains(t, out, "Target (20%)")
	// Only the legend sample is drawn; the line itself is off-chart.
	assert.Equal(t, 2, strings.Count(out, "╌"))
}

func TestRenderLineChart_Empty(t *testing.T) {
	assert.Contains(t, RenderLineChart(nil, 85, 80, 12, DefaultTheme()), "No pass-rate data")
}

func TestRenderLineChart_SinglePoint(t *testing.T) {
	out := RenderLineChart([]health.PassRatePoint{{Week: "W1", PassRate: 120}}, 85, 40, 5, DefaultTheme())

	assert.Contains(t, out, "120.0%")
	assert.Contains(t, out, "W1")
	assert.Equal(t, 2, strings.Count(out, "●"))
}

func TestRenderBarChart(t *testing.T) {
	theme := DefaultTheme()
	out := RenderBarChart(sampleAlerts(), 80, 6, theme)

	assert.Contains(t, out, "Alerts Triggered")
	for _, pt := range sampleAlerts() {
		assert.Contains(t, out, pt.Date)
	}
	// Peak 11 scales the axis to 12 in steps of 3.
	assert.Contains(t, out, " 12")
	assert.Contains(t, out, "  9")
	assert.Contains(t, out, "11")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, fgSeq(theme.Palette.Bar))
}

func TestRenderBarChart_AllZero(t *testing.T) {
	out := RenderBarChart([]health.AlertCountPoint{{Date: "d1"}, {Date: "d2"}}, 40, 4, DefaultTheme())

	assert.NotContains(t, out, "█")
	assert.Contains(t, out, "d1")
	assert.Contains(t, out, "  4")
}

func TestRenderBarChart_Empty(t *testing.T) {
	assert.Contains(t, RenderBarChart(nil, 80, 6, DefaultTheme()), "No alert data")
}
