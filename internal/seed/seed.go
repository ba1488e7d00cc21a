// Package seed holds the fixed demo dataset the dashboard starts from.
//
// There is no persistence layer: every run begins from this data and edits
// are lost on exit.
package seed

import (
	"fmt"
	"math"

	"github.com/verte-zerg/streamsync/internal/model"
)

// Data anchors. The dataset ends in late November 2025, so the views treat
// that month as "current" instead of the wall clock.
const (
	CurrentMonthStart = "2025-11-01"
	CurrentMonthEnd   = "2025-11-30"
	LastMonthStart    = "2025-10-01"
	LastMonthEnd      = "2025-10-31"
	WeekStart         = "2025-11-14"
	AllTimeStart      = "2025-01-01"
	AllTimeEnd        = "2025-12-31"
)

// Hosts returns the fixed host roster.
func Hosts() []model.Host {
	return []model.Host{
		{ID: "h1", Name: "Maricel", Avatar: "https://i.pravatar.cc/150?img=5", JoinDate: "2024-03-12", Status: model.StatusActive},
		{ID: "h2", Name: "Jasmine", Avatar: "https://i.pravatar.cc/150?img=9", JoinDate: "2024-06-01", Status: model.StatusActive},
		{ID: "h3", Name: "Kristine", Avatar: "https://i.pravatar.cc/150?img=16", JoinDate: "2024-09-20", Status: model.StatusActive},
		{ID: "h4", Name: "Angelo", Avatar: "https://i.pravatar.cc/150?img=12", JoinDate: "2025-01-08", Status: model.StatusOnLeave},
		{ID: "h5", Name: "Divine", Avatar: "https://i.pravatar.cc/150?img=20", JoinDate: "2025-04-15", Status: model.StatusInactive},
	}
}

// Sessions returns the fixed session history (October and November 2025).
func Sessions() []model.Session {
	rows := []struct {
		date    string
		start   string
		hostID  string
		account string
		minutes int
		revenue float64
		views   int
	}{
		{"2025-10-02", "19:00", "h1", model.AccountBig, 180, 21450, 4120},
		{"2025-10-03", "20:00", "h2", model.AccountSmall, 120, 6200, 1530},
		{"2025-10-06", "19:00", "h1", model.AccountBig, 210, 24800, 4650},
		{"2025-10-08", "18:30", "h3", model.AccountBig, 150, 13200, 2980},
		{"2025-10-10", "20:00", "h2", model.AccountSmall, 120, 7100, 1710},
		{"2025-10-13", "19:00", "h1", model.AccountBig, 240, 28950, 5230},
		{"2025-10-15", "19:30", "h4", model.AccountSmall, 90, 3900, 880},
		{"2025-10-17", "18:30", "h3", model.AccountBig, 180, 15600, 3140},
		{"2025-10-20", "19:00", "h1", model.AccountBig, 180, 22700, 4390},
		{"2025-10-22", "20:00", "h2", model.AccountSmall, 150, 8400, 1950},
		{"2025-10-24", "18:30", "h3", model.AccountBig, 150, 14100, 3020},
		{"2025-10-27", "19:00", "h1", model.AccountBig, 210, 26300, 4870},
		{"2025-10-29", "19:30", "h4", model.AccountSmall, 120, 5200, 1160},
		{"2025-10-31", "20:00", "h2", model.AccountBig, 180, 17800, 3560},
		{"2025-11-01", "19:00", "h1", model.AccountBig, 210, 27400, 5010},
		{"2025-11-03", "20:00", "h2", model.AccountSmall, 120, 7600, 1820},
		{"2025-11-04", "18:30", "h3", model.AccountBig, 150, 14900, 3090},
		{"2025-11-05", "19:00", "h1", model.AccountBig, 240, 31200, 5640},
		{"2025-11-07", "20:00", "h2", model.AccountSmall, 150, 9100, 2080},
		{"2025-11-08", "18:30", "h3", model.AccountBig, 180, 16800, 3310},
		{"2025-11-10", "19:00", "h1", model.AccountBig, 210, 29500, 5280},
		{"2025-11-11", "20:00", "h2", model.AccountBig, 180, 19400, 3720},
		{"2025-11-12", "18:30", "h3", model.AccountSmall, 120, 6800, 1540},
		{"2025-11-14", "19:00", "h1", model.AccountBig, 240, 33100, 5890},
		{"2025-11-15", "20:00", "h2", model.AccountSmall, 150, 9800, 2210},
		{"2025-11-17", "18:30", "h3", model.AccountBig, 180, 17500, 3400},
		{"2025-11-18", "19:00", "h1", model.AccountBig, 210, 30600, 5430},
		{"2025-11-19", "20:00", "h2", model.AccountSmall, 120, 8200, 1890},
		{"2025-11-20", "18:30", "h3", model.AccountBig, 150, 15700, 3170},
		{"2025-11-21", "19:00", "h1", model.AccountBig, 240, 34800, 6050},
	}

	hostNames := map[string]string{}
	for _, h := range Hosts() {
		hostNames[h.ID] = h.Name
	}

	sessions := make([]model.Session, 0, len(rows))
	for i, r := range rows {
		// October records were entered at an older effective rate; the two
		// currency amounts are stored independently on purpose.
		rate := 58.0
		if r.date >= CurrentMonthStart {
			rate = model.PesoPerUSD
		}
		sessions = append(sessions, model.Session{
			ID:              fmt.Sprintf("seed-%03d", i+1),
			HostID:          r.hostID,
			HostName:        hostNames[r.hostID],
			AccountID:       r.account,
			AccountName:     model.AccountName(r.account),
			Date:            r.date,
			StartTime:       r.start,
			DurationMinutes: r.minutes,
			Revenue:         r.revenue,
			RevenueUSD:      math.Round(r.revenue/rate*100) / 100,
			Views:           r.views,
		})
	}
	return sessions
}
