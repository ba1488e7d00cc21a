// Package stats contains the session aggregation and filtering engine.
//
// Every view derives its numbers from the same raw session set through the
// functions here. All of them are pure: no I/O, inputs never mutated.
package stats

import "github.com/verte-zerg/streamsync/internal/model"

// Rollup is the aggregated metrics over a set of sessions.
//
// TotalRevenue (PHP) and TotalRevenueUSD are summed independently; neither
// is derived from the other. AvgRevenue and HourlyRate are recomputed from
// the totals, so rollups of disjoint subsets add up for the totals but the
// two ratios must always be recomputed from the union.
type Rollup struct {
	Count                int
	TotalRevenue         float64
	TotalRevenueUSD      float64
	TotalDurationMinutes int
	AvgRevenue           float64
	HourlyRate           float64
}

// FilterByRange returns the sessions whose date lies inclusively between
// start and end under lexicographic ISO comparison. An inverted range
// yields an empty result; malformed dates are not validated.
func FilterByRange(sessions []model.Session, start, end string) []model.Session {
	rng := model.DateRange{Start: start, End: end}
	out := make([]model.Session, 0, len(sessions))
	for _, s := range sessions {
		if rng.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}

// ForHost returns the subset belonging to one host.
func ForHost(sessions []model.Session, hostID string) []model.Session {
	out := make([]model.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.HostID == hostID {
			out = append(out, s)
		}
	}
	return out
}

// ForAccount returns the subset attributed to one account.
func ForAccount(sessions []model.Session, accountID string) []model.Session {
	out := make([]model.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.AccountID == accountID {
			out = append(out, s)
		}
	}
	return out
}

// Aggregate reduces a session set into a Rollup. Empty input and zero total
// duration short-circuit the derived ratios to zero.
func Aggregate(sessions []model.Session) Rollup {
	var r Rollup
	for _, s := range sessions {
		r.Count++
		r.TotalRevenue += s.Revenue
		r.TotalRevenueUSD += s.RevenueUSD
		r.TotalDurationMinutes += s.DurationMinutes
	}
	if r.Count > 0 {
		r.AvgRevenue = r.TotalRevenue / float64(r.Count)
	}
	if r.TotalDurationMinutes > 0 {
		r.HourlyRate = r.TotalRevenue / (float64(r.TotalDurationMinutes) / 60)
	}
	return r
}
