package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/streamsync/internal/model"
	"github.com/verte-zerg/streamsync/internal/stats"
)

// renderHosts builds the roster tab: one card per host, ranked by revenue
// over the selected range, hosts without sessions in the range last.
func (m *Model) renderHosts(width int) string {
	if len(m.hosts) == 0 {
		return "No hosts found."
	}
	ranged := m.rangedSessions()
	ranked := stats.RankHosts(m.hosts, ranged)

	seen := map[string]bool{}
	cards := make([]string, 0, len(m.hosts))
	for i, hr := range ranked {
		seen[hr.Host.ID] = true
		cards = append(cards, hostCard(hr.Host, hr.Rollup, i+1))
	}
	for _, h := range m.hosts {
		if !seen[h.ID] {
			cards = append(cards, hostCard(h, stats.Rollup{}, 0))
		}
	}

	if width < 80 {
		return strings.Join(cards, "\n")
	}
	perRow := maxInt(1, width/40)
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := minInt(start+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func hostCard(h model.Host, r stats.Rollup, rank int) string {
	title := h.Name
	if rank > 0 {
		title = fmt.Sprintf("#%d %s", rank, h.Name)
	}
	lines := []string{
		cardValueStyle.Render(title) + "  " + statusBadge(h.Status),
		cardTitleStyle.Render("Joined " + h.JoinDate),
	}
	if r.Count > 0 {
		lines = append(lines,
			fmt.Sprintf("Sessions: %d  Hours: %.1f", r.Count, float64(r.TotalDurationMinutes)/60),
			fmt.Sprintf("Revenue: %s", stats.FormatPHP(r.TotalRevenue)),
			fmt.Sprintf("Rate: %s/h", stats.FormatPHP(r.HourlyRate)),
		)
	} else {
		lines = append(lines, headerStyle.Render("No sessions in range"))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func statusBadge(status model.HostStatus) string {
	switch status {
	case model.StatusActive:
		return cardDeltaStyle.Render("Active")
	case model.StatusOnLeave:
		return cardTitleStyle.Render("On Leave")
	default:
		return cardDropStyle.Render("Inactive")
	}
}
