package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/streamsync/internal/model"
	"github.com/verte-zerg/streamsync/internal/seed"
	"github.com/verte-zerg/streamsync/internal/stats"
)

const recentSessionCount = 5

// renderOverview builds the dashboard tab: KPI cards, host rankings over
// the selected range, the daily revenue chart, and the latest sessions.
func (m *Model) renderOverview(width int) string {
	if len(m.sessions) == 0 {
		return "No sessions found."
	}
	sections := []string{
		m.renderKPICards(width),
		"",
		cardValueStyle.Render("Host rankings") + headerStyle.Render("  ("+m.rangeName+")"),
		strings.Join(stats.RankingTable(m.hosts, m.rangedSessions()), "\n"),
		"",
		cardValueStyle.Render("Daily revenue (PHP)"),
		stats.RenderDailyBars(stats.BucketByDay(m.rangedSessions()), width, stats.FormatPHP),
		"",
		cardValueStyle.Render("Recent sessions"),
		m.renderRecentSessions(),
	}
	return strings.TrimRight(strings.Join(sections, "\n"), "\n")
}

func (m *Model) rangedSessions() []model.Session {
	return stats.FilterByRange(m.sessions, m.rng.Start, m.rng.End)
}

// The KPI cards compare fixed calendar anchors rather than the selected
// range: the dataset ends in November 2025, so that month is "current".
func (m *Model) renderKPICards(width int) string {
	month := stats.Aggregate(stats.FilterByRange(m.sessions, seed.CurrentMonthStart, seed.CurrentMonthEnd))
	lastMonth := stats.Aggregate(stats.FilterByRange(m.sessions, seed.LastMonthStart, seed.LastMonthEnd))
	week := stats.Aggregate(stats.FilterByRange(m.sessions, seed.WeekStart, seed.CurrentMonthEnd))

	activeCount := 0
	for _, h := range m.hosts {
		if h.Status == model.StatusActive {
			activeCount++
		}
	}

	delta := ""
	if lastMonth.TotalRevenueUSD > 0 {
		pct := (month.TotalRevenueUSD - lastMonth.TotalRevenueUSD) / lastMonth.TotalRevenueUSD * 100
		if pct >= 0 {
			delta = cardDeltaStyle.Render(fmt.Sprintf("+%.1f%% vs last month", pct))
		} else {
			delta = cardDropStyle.Render(fmt.Sprintf("%.1f%% vs last month", pct))
		}
	}

	cards := []string{
		metricCard("Revenue (USD, month)", stats.FormatUSD(month.TotalRevenueUSD), delta),
		metricCard("Revenue (PHP, 7 days)", stats.FormatPHP(week.TotalRevenue), ""),
		metricCard("Hours live (month)", fmt.Sprintf("%.1f", float64(month.TotalDurationMinutes)/60), ""),
		metricCard("Active hosts", fmt.Sprintf("%d", activeCount), ""),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value, extra string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	if extra != "" {
		content += "\n" + extra
	}
	return cardStyle.Render(content)
}

func (m *Model) renderRecentSessions() string {
	recent := append([]model.Session(nil), m.sessions...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	if len(recent) > recentSessionCount {
		recent = recent[:recentSessionCount]
	}
	lines := make([]string, 0, len(recent))
	for _, s := range recent {
		line := fmt.Sprintf("%s %s  %-10s %-18s %4dm  %s",
			s.Date, s.StartTime, s.HostName, s.AccountName, s.DurationMinutes, stats.FormatPHP(s.Revenue))
		lines = append(lines, tableMutedStyle.Render(line))
	}
	return strings.Join(lines, "\n")
}
