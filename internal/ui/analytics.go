package ui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/streamsync/internal/model"
	"github.com/verte-zerg/streamsync/internal/report"
	"github.com/verte-zerg/streamsync/internal/seed"
	"github.com/verte-zerg/streamsync/internal/stats"
)

const reportTimeout = 90 * time.Second

// reportMsg delivers the finished AI analysis text back to the UI loop.
type reportMsg string

// generateReportCmd runs the analysis request off the UI loop. The result
// is always displayable text: failures arrive as fixed fallback strings.
// The snapshot is taken up front so the request is unaffected by edits
// made while it is in flight.
func (m *Model) generateReportCmd() tea.Cmd {
	sessions := append([]model.Session(nil), m.sessions...)
	hosts := append([]model.Host(nil), m.hosts...)
	summarizer := m.summarizer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		return reportMsg(report.Generate(ctx, summarizer, sessions, hosts))
	}
}

// renderAnalytics builds the analytics tab: account comparison cards, the
// per-account revenue trend, host revenue shares, and the AI report.
func (m *Model) renderAnalytics(width int) string {
	if len(m.sessions) == 0 {
		return "No sessions found."
	}
	ranged := m.rangedSessions()
	sections := []string{
		m.renderAccountCards(width),
		"",
		cardValueStyle.Render("Revenue by account (USD)") + headerStyle.Render("  ("+m.rangeName+")"),
		renderAccountPlot(ranged, width),
		cardValueStyle.Render("Revenue share by host") + headerStyle.Render("  ("+m.rangeName+")"),
		m.renderHostShares(ranged, width),
		"",
		cardValueStyle.Render("AI analysis"),
		m.renderReportSection(),
	}
	return strings.TrimRight(strings.Join(sections, "\n"), "\n")
}

// Account cards always cover the current month so the two accounts are
// compared on a fixed window regardless of the selected range.
func (m *Model) renderAccountCards(width int) string {
	monthSessions := stats.FilterByRange(m.sessions, seed.CurrentMonthStart, seed.CurrentMonthEnd)
	big, small := stats.AccountRollups(monthSessions)
	cards := []string{accountCard(big), accountCard(small)}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func accountCard(a stats.AccountRollup) string {
	body := fmt.Sprintf("%s\n%s\n%s",
		cardTitleStyle.Render(a.AccountName),
		cardValueStyle.Render(stats.FormatUSD(a.Rollup.TotalRevenueUSD)),
		headerStyle.Render(fmt.Sprintf("%d sessions, %.1f h", a.Rollup.Count, float64(a.Rollup.TotalDurationMinutes)/60)),
	)
	return cardStyle.Render(body)
}

func renderAccountPlot(sessions []model.Session, width int) string {
	series := stats.BucketByAccount(sessions)
	if len(series.Dates) == 0 {
		return "No data in the selected period.\n"
	}
	var buf bytes.Buffer
	err := stats.PlotSeries(&buf, "", []stats.Series{
		{Name: model.AccountBigName, Values: series.BigUSD},
		{Name: model.AccountSmallName, Values: series.SmallUSD},
	}, stats.PlotWidthFor(width), plotHeight, true)
	if err != nil {
		return fmt.Sprintf("Failed to render chart: %v\n", err)
	}
	return buf.String()
}

func (m *Model) renderHostShares(sessions []model.Session, width int) string {
	ranked := stats.RankHosts(m.hosts, sessions)
	if len(ranked) == 0 {
		return "No data in the selected period."
	}
	total := stats.Aggregate(sessions).TotalRevenue
	barWidth := minInt(40, maxInt(10, width-40))
	lines := make([]string, 0, len(ranked))
	for _, hr := range ranked {
		share := 0.0
		if total > 0 {
			share = hr.Rollup.TotalRevenue / total
		}
		bar := strings.Repeat("█", int(share*float64(barWidth)+0.5))
		lines = append(lines, fmt.Sprintf("%-10s %5.1f%% %s", hr.Host.Name, share*100, bar))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderReportSection() string {
	if m.generating {
		return headerStyle.Render("Generating report...")
	}
	if m.reportText == "" {
		return headerStyle.Render("Press r to generate a performance report over the full history.")
	}
	return report.RenderMarkdown(m.reportText)
}
