package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/streamsync/internal/model"
)

// FormatPHP renders a peso amount with thousands separators, no decimals.
func FormatPHP(v float64) string {
	return "₱" + groupThousands(v)
}

// FormatUSD renders a dollar amount with thousands separators, no decimals.
func FormatUSD(v float64) string {
	return "$" + groupThousands(v)
}

func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// RenderSummary prints the period rollup, host rankings, and account totals
// as plain text for the summary subcommand.
func RenderSummary(w io.Writer, hosts []model.Host, sessions []model.Session, start, end string) error {
	filtered := FilterByRange(sessions, start, end)
	if _, err := fmt.Fprintf(w, "Period %s to %s\n\n", start, end); err != nil {
		return err
	}
	if len(filtered) == 0 {
		_, err := fmt.Fprintln(w, "No sessions in the selected period.")
		return err
	}

	total := Aggregate(filtered)
	if _, err := fmt.Fprintf(w, "Sessions: %d\n", total.Count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Revenue: %s (%s)\n", FormatPHP(total.TotalRevenue), FormatUSD(total.TotalRevenueUSD)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Hours live: %.1f\n", float64(total.TotalDurationMinutes)/60); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg per session: %s\n", FormatPHP(total.AvgRevenue)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Hourly rate: %s/h\n\n", FormatPHP(total.HourlyRate)); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Host rankings"); err != nil {
		return err
	}
	for _, line := range RankingTable(hosts, filtered) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	big, small := AccountRollups(filtered)
	if _, err := fmt.Fprintln(w, "Accounts"); err != nil {
		return err
	}
	for _, line := range accountTable(big, small) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RankingTable formats the ranked host rollups as aligned text lines.
func RankingTable(hosts []model.Host, sessions []model.Session) []string {
	ranked := RankHosts(hosts, sessions)
	headers := []string{"#", "Host", "Sessions", "Revenue (PHP)", "Hours", "PHP/h"}
	rows := make([][]string, 0, len(ranked))
	for i, hr := range ranked {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			hr.Host.Name,
			strconv.Itoa(hr.Rollup.Count),
			FormatPHP(hr.Rollup.TotalRevenue),
			fmt.Sprintf("%.1f", float64(hr.Rollup.TotalDurationMinutes)/60),
			FormatPHP(hr.Rollup.HourlyRate),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true}
	return formatTable(headers, rows, rightAlign)
}

func accountTable(big, small AccountRollup) []string {
	headers := []string{"Account", "Sessions", "Revenue (USD)", "Hours", "Avg/session (USD)"}
	rows := [][]string{accountRow(big), accountRow(small)}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	return formatTable(headers, rows, rightAlign)
}

func accountRow(a AccountRollup) []string {
	avgUSD := 0.0
	if a.Rollup.Count > 0 {
		avgUSD = a.Rollup.TotalRevenueUSD / float64(a.Rollup.Count)
	}
	return []string{
		a.AccountName,
		strconv.Itoa(a.Rollup.Count),
		FormatUSD(a.Rollup.TotalRevenueUSD),
		fmt.Sprintf("%.1f", float64(a.Rollup.TotalDurationMinutes)/60),
		FormatUSD(avgUSD),
	}
}
