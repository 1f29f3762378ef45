package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lightworkai/kycmon/internal/health"
)

// The pass-rate chart always plots this y-domain so declines read the same
// regardless of the data.
const (
	passRateDomainMin = 50.0
	passRateDomainMax = 100.0
	passRateTickStep  = 10.0
)

// yGutter is the width of the y-axis: a three-character tick label, a space
// and the axis line.
const yGutter = 5

// barBlocks are block characters for 8-level vertical resolution (lowest to highest).
var barBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// normalizeValue converts a value to 0-1 range given min/max bounds.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0.5
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// niceMax rounds the largest bar value up so the y-axis gets four even steps.
func niceMax(maxVal int) int {
	if maxVal <= 0 {
		return 4
	}
	step := (maxVal + 3) / 4
	return step * 4
}

// cell is one character of a chart canvas.
type cell struct {
	ch    rune
	color lipgloss.Color
	bold  bool
}

// canvas is a fixed-size character grid charts draw into.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x] = cell{ch: ' '}
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

// set writes a single character; out of bounds writes are dropped.
func (c *canvas) set(x, y int, ch rune, color lipgloss.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{ch: ch, color: color}
}

// text writes s starting at x.
func (c *canvas) text(x, y int, s string, color lipgloss.Color, bold bool) {
	for i, r := range []rune(s) {
		if x+i < 0 || x+i >= c.w || y < 0 || y >= c.h {
			continue
		}
		c.cells[y][x+i] = cell{ch: r, color: color, bold: bold}
	}
}

// lines renders the canvas, styling runs of identically colored cells together.
func (c *canvas) lines() []string {
	out := make([]string, c.h)
	for y, row := range c.cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].color == row[start].color && row[x].bold == row[start].bold {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:x] {
				run.WriteRune(cl.ch)
			}
			head := row[start]
			if head.color == "" && !head.bold {
				b.WriteString(run.String())
			} else {
				style := lipgloss.NewStyle().Bold(head.bold)
				if head.color != "" {
					style = style.Foreground(head.color)
				}
				b.WriteString(style.Render(run.String()))
			}
			start = x
		}
		out[y] = b.String()
	}
	return out
}

// placeLabel returns the x position that centers a label of length n on
// center, kept inside [lo, hi-n].
func placeLabel(center, n, lo, hi int) int {
	x := center - n/2
	if x > hi-n {
		x = hi - n
	}
	if x < lo {
		x = lo
	}
	return x
}

// RenderLineChart plots the pass-rate series on a fixed 50-100% domain with
// a dashed target line, point markers and value labels.
//
// Parameters:
//   - points: pass-rate series in display order
//   - target: pass rate drawn as the dashed target line
//   - width: total width in columns including the y-axis
//   - height: number of plot rows
func RenderLineChart(points []health.PassRatePoint, target float64, width, height int, theme Theme) string {
	if len(points) == 0 {
		return theme.Muted.Render("No pass-rate data")
	}
	if height < 3 {
		height = 3
	}
	plotW := width - yGutter
	if plotW < len(points) {
		plotW = len(points)
	}

	p := theme.Palette
	c := newCanvas(yGutter+plotW, height+2)
	axisRow := height

	rowFor := func(v float64) int {
		n := normalizeValue(v, passRateDomainMin, passRateDomainMax)
		level := int(math.Round(n * float64(height-1)))
		return (height - 1) - clampInt(level, height-1)
	}
	colFor := func(i int) int {
		if len(points) == 1 {
			return yGutter + plotW/2
		}
		return yGutter + i*(plotW-1)/(len(points)-1)
	}

	// Axes
	for y := 0; y < height; y++ {
		c.set(yGutter-1, y, '│', p.BarEmpty)
	}
	c.set(yGutter-1, axisRow, '└', p.BarEmpty)
	for x := yGutter; x < yGutter+plotW; x++ {
		c.set(x, axisRow, '─', p.BarEmpty)
	}
	for tick := passRateDomainMin; tick <= passRateDomainMax; tick += passRateTickStep {
		y := rowFor(tick)
		c.text(0, y, fmt.Sprintf("%3.0f", tick), p.Zero, false)
		c.set(yGutter-1, y, '┤', p.BarEmpty)
	}

	// Target line
	if target >= passRateDomainMin && target <= passRateDomainMax {
		ty := rowFor(target)
		for x := yGutter; x < yGutter+plotW; x++ {
			c.set(x, ty, '╌', p.TargetLine)
		}
	}

	// Pass-rate line, interpolated between points
	for i := 0; i+1 < len(points); i++ {
		x0, x1 := colFor(i), colFor(i+1)
		v0, v1 := points[i].PassRate, points[i+1].PassRate
		prevRow := rowFor(v0)
		for x := x0; x <= x1; x++ {
			t := 0.0
			if x1 > x0 {
				t = float64(x-x0) / float64(x1-x0)
			}
			row := rowFor(v0 + (v1-v0)*t)
			c.set(x, row, '·', p.PassRateLine)
			for y := min(prevRow, row) + 1; y < max(prevRow, row); y++ {
				c.set(x, y, '·', p.PassRateLine)
			}
			prevRow = row
		}
	}

	// Markers and value labels
	for i, pt := range points {
		x, y := colFor(i), rowFor(pt.PassRate)
		c.set(x, y, '●', p.PassRateLine)

		label := fmt.Sprintf("%.1f%%", pt.PassRate)
		ly := y - 1
		if ly < 0 {
			ly = y + 1
		}
		c.text(placeLabel(x, len(label), yGutter, yGutter+plotW), ly, label, p.Text, true)
	}

	// X labels, skipping any that would collide with the previous one
	lastEnd := -1
	for i, pt := range points {
		n := len([]rune(pt.Week))
		x := placeLabel(colFor(i), n, yGutter, yGutter+plotW)
		if x <= lastEnd {
			continue
		}
		c.text(x, axisRow+1, pt.Week, p.Zero, false)
		lastEnd = x + n
	}

	targetLabel := "Target (" + strconv.FormatFloat(target, 'f', -1, 64) + "%)"
	legend := lipgloss.NewStyle().Foreground(p.TargetLine).Render("╌╌") + " " +
		theme.Muted.Render(targetLabel) + "   " +
		lipgloss.NewStyle().Foreground(p.PassRateLine).Render("·●·") + " " +
		theme.Muted.Render("Pass Rate")

	out := []string{
		lipgloss.PlaceHorizontal(yGutter+plotW, lipgloss.Center, legend),
		theme.Muted.Render("Pass Rate (%)"),
	}
	out = append(out, c.lines()...)
	out = append(out, lipgloss.PlaceHorizontal(yGutter+plotW, lipgloss.Center, theme.Muted.Render("Month")))
	return strings.Join(out, "\n")
}

// RenderBarChart draws one vertical bar per date, with eighth-block tops,
// count labels and an auto-scaled y-axis.
func RenderBarChart(points []health.AlertCountPoint, width, height int, theme Theme) string {
	if len(points) == 0 {
		return theme.Muted.Render("No alert data")
	}
	if height < 2 {
		height = 2
	}
	slot := (width - yGutter) / len(points)
	if slot < 1 {
		slot = 1
	}
	plotW := slot * len(points)

	peak := 0
	for _, pt := range points {
		if pt.Alerts > peak {
			peak = pt.Alerts
		}
	}
	yMax := niceMax(peak)
	step := yMax / 4

	p := theme.Palette
	// Row 0 is headroom for the label of a full-height bar; rows 1..height
	// are the plot; the last row is the x-axis.
	c := newCanvas(yGutter+plotW, height+2)
	axisRow := height + 1

	levelRow := func(v int) int {
		level := int(math.Round(float64(v) / float64(yMax) * float64(height)))
		return axisRow - clampInt(level, height)
	}

	for y := 1; y <= height; y++ {
		c.set(yGutter-1, y, '│', p.BarEmpty)
	}
	c.set(yGutter-1, axisRow, '└', p.BarEmpty)
	for x := yGutter; x < yGutter+plotW; x++ {
		c.set(x, axisRow, '─', p.BarEmpty)
	}
	for tick := 0; tick <= yMax; tick += step {
		y := levelRow(tick)
		c.text(0, y, fmt.Sprintf("%3d", tick), p.Zero, false)
		if y != axisRow {
			c.set(yGutter-1, y, '┤', p.BarEmpty)
		}
	}

	barW := max(1, slot*2/3)
	for i, pt := range points {
		bx := yGutter + i*slot + (slot-barW)/2

		units := int(math.Round(float64(max(pt.Alerts, 0)) / float64(yMax) * float64(height*8)))
		units = clampInt(units, height*8)
		full, rem := units/8, units%8

		for k := 0; k < full; k++ {
			for x := bx; x < bx+barW; x++ {
				c.set(x, height-k, barBlocks[len(barBlocks)-1], p.Bar)
			}
		}
		labelY := height - full
		if rem > 0 {
			for x := bx; x < bx+barW; x++ {
				c.set(x, height-full, barBlocks[rem-1], p.Bar)
			}
			labelY--
		}

		label := strconv.Itoa(pt.Alerts)
		c.text(placeLabel(bx+barW/2, len(label), yGutter, yGutter+plotW), labelY, label, p.Text, true)
	}

	var dates strings.Builder
	dates.WriteString(strings.Repeat(" ", yGutter))
	for _, pt := range points {
		label := pt.Date
		if slot > 1 && len([]rune(label)) > slot-1 {
			label = string([]rune(label)[:slot-1])
		}
		dates.WriteString(lipgloss.PlaceHorizontal(slot, lipgloss.Center, label))
	}

	legend := lipgloss.NewStyle().Foreground(p.Bar).Render("■") + " " + theme.Muted.Render("Alerts Triggered")

	out := []string{lipgloss.PlaceHorizontal(yGutter+plotW, lipgloss.Right, legend)}
	out = append(out, c.lines()...)
	out = append(out, theme.Muted.Render(dates.String()))
	return strings.Join(out, "\n")
}
