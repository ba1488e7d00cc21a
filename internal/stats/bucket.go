package stats

import (
	"sort"

	"github.com/verte-zerg/streamsync/internal/model"
)

// DailyBucket sums the revenue of all sessions sharing one calendar date.
// Hosts lists the contributing host names for tooltip display only; it
// carries no aggregation meaning.
type DailyBucket struct {
	Date       string
	Revenue    float64
	RevenueUSD float64
	Hosts      []string
}

// BucketByDay groups sessions by exact date, summing both currencies
// independently, and returns the buckets ascending by date.
func BucketByDay(sessions []model.Session) []DailyBucket {
	byDate := map[string]*DailyBucket{}
	for _, s := range sessions {
		b, ok := byDate[s.Date]
		if !ok {
			b = &DailyBucket{Date: s.Date}
			byDate[s.Date] = b
		}
		b.Revenue += s.Revenue
		b.RevenueUSD += s.RevenueUSD
		if !containsString(b.Hosts, s.HostName) {
			b.Hosts = append(b.Hosts, s.HostName)
		}
	}
	buckets := make([]DailyBucket, 0, len(byDate))
	for _, b := range byDate {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})
	return buckets
}

// AccountSeries holds per-day USD revenue for the two fixed accounts,
// aligned on one ascending date axis for the comparison chart.
type AccountSeries struct {
	Dates    []string
	BigUSD   []float64
	SmallUSD []float64
}

// BucketByAccount splits the daily USD revenue between the two accounts.
func BucketByAccount(sessions []model.Session) AccountSeries {
	type pair struct {
		big   float64
		small float64
	}
	byDate := map[string]*pair{}
	for _, s := range sessions {
		p, ok := byDate[s.Date]
		if !ok {
			p = &pair{}
			byDate[s.Date] = p
		}
		if s.AccountID == model.AccountSmall {
			p.small += s.RevenueUSD
		} else {
			p.big += s.RevenueUSD
		}
	}
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := AccountSeries{Dates: dates}
	for _, date := range dates {
		series.BigUSD = append(series.BigUSD, byDate[date].big)
		series.SmallUSD = append(series.SmallUSD, byDate[date].small)
	}
	return series
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
