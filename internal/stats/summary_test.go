package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/streamsync/internal/model"
)

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "₱0"},
		{950, "₱950"},
		{1500, "₱1,500"},
		{1234567, "₱1,234,567"},
		{-21450, "₱-21,450"},
		{1999.6, "₱2,000"},
	}
	for _, tt := range tests {
		if got := FormatPHP(tt.value); got != tt.want {
			t.Errorf("FormatPHP(%f) = %q, want %q", tt.value, got, tt.want)
		}
	}
	if got := FormatUSD(1500); got != "$1,500" {
		t.Errorf("FormatUSD(1500) = %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	hosts := testHosts()
	sessions := []model.Session{
		session("s1", "h1", model.AccountBig, "2025-11-05", 120, 1000, 17),
		session("s2", "h2", model.AccountSmall, "2025-11-06", 180, 2000, 34),
		session("s3", "h1", model.AccountBig, "2025-10-01", 60, 9999, 170),
	}

	var buf bytes.Buffer
	if err := RenderSummary(&buf, hosts, sessions, "2025-11-01", "2025-11-30"); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Period 2025-11-01 to 2025-11-30") {
		t.Fatalf("expected period header, got %q", out)
	}
	if !strings.Contains(out, "Sessions: 2") {
		t.Fatalf("expected the October session filtered out, got %q", out)
	}
	if !strings.Contains(out, "Host rankings") || !strings.Contains(out, "Accounts") {
		t.Fatalf("expected rankings and accounts sections, got %q", out)
	}
	if strings.Contains(out, "9,999") {
		t.Fatalf("out-of-range revenue leaked into summary: %q", out)
	}
}

func TestRenderSummaryEmptyPeriod(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, testHosts(), nil, "2025-11-01", "2025-11-30"); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions in the selected period.") {
		t.Fatalf("expected empty-period notice, got %q", buf.String())
	}
}

func TestRankingTable(t *testing.T) {
	sessions := []model.Session{
		session("s1", "h1", model.AccountBig, "2025-11-05", 120, 1000, 17),
		session("s2", "h2", model.AccountSmall, "2025-11-06", 60, 3000, 51),
	}
	lines := RankingTable(testHosts(), sessions)
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "Jasmine") {
		t.Fatalf("expected top earner first, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "Maricel") {
		t.Fatalf("expected second host, got %q", lines[2])
	}
}
