package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlotSeries(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, "Revenue by account", []Series{
		{Name: "anta_globalstore", Values: []float64{120, 340, 260, 410, 380}},
		{Name: "keepmovingofficial", Values: []float64{40, 80, 60, 110, 90}},
	}, 5, 4, false)
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Revenue by account") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "Scaled per series") {
		t.Fatalf("expected scale note in output")
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected legend in output")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	expectedMin := 1 + 1 + 2 + 4 + 1
	if len(lines) < expectedMin {
		t.Fatalf("expected at least %d lines of output, got %d", expectedMin, len(lines))
	}
}

func TestPlotSeriesSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, "Empty", []Series{{Name: "A"}}, 5, 4, false)
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty series, got %q", buf.String())
	}
}

func TestPlotWidthFor(t *testing.T) {
	if got := PlotWidthFor(80); got != 80-3-3 {
		t.Fatalf("unexpected plot width: %d", got)
	}
	if got := PlotWidthFor(5); got != minPlotWidth {
		t.Fatalf("expected minimum width, got %d", got)
	}
	if got := PlotWidthFor(0); got != minPlotWidth {
		t.Fatalf("expected minimum width for zero input, got %d", got)
	}
}

func TestRenderDailyBars(t *testing.T) {
	buckets := []DailyBucket{
		{Date: "2025-11-05", Revenue: 1000, Hosts: []string{"Maricel"}},
		{Date: "2025-11-06", Revenue: 2000, Hosts: []string{"Maricel", "Jasmine"}},
	}
	out := RenderDailyBars(buckets, 80, FormatPHP)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "2025-11-05") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "(Maricel, Jasmine)") {
		t.Fatalf("expected host names in line: %q", lines[1])
	}
	// The bigger day gets the longer bar.
	if strings.Count(lines[1], barGlyph) <= strings.Count(lines[0], barGlyph) {
		t.Fatalf("expected longer bar for the bigger day")
	}
	// The longest bar fills the width left after the date, the separator
	// (display cells, not bytes), and the amount column.
	wantBar := 80 - 10 - displayWidth(axisSeparator) - displayWidth("₱2,000") - 1
	if got := strings.Count(lines[1], barGlyph); got != wantBar {
		t.Fatalf("expected %d bar cells, got %d", wantBar, got)
	}
}

func TestRenderDailyBarsEmpty(t *testing.T) {
	out := RenderDailyBars(nil, 80, FormatPHP)
	if out != "No data in the selected period." {
		t.Fatalf("unexpected empty-state output: %q", out)
	}
}
