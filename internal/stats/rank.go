package stats

import (
	"sort"

	"github.com/verte-zerg/streamsync/internal/model"
)

// HostRollup pairs a host with its rollup over some filtered session set.
type HostRollup struct {
	Host   model.Host
	Rollup Rollup
}

// RankHosts computes a rollup per host over the given (already filtered)
// session set, drops hosts without any matching session, and sorts the rest
// by total revenue descending. Ties keep their original relative order.
func RankHosts(hosts []model.Host, sessions []model.Session) []HostRollup {
	ranked := make([]HostRollup, 0, len(hosts))
	for _, h := range hosts {
		rollup := Aggregate(ForHost(sessions, h.ID))
		if rollup.Count == 0 {
			continue
		}
		ranked = append(ranked, HostRollup{Host: h, Rollup: rollup})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rollup.TotalRevenue > ranked[j].Rollup.TotalRevenue
	})
	return ranked
}

// AccountRollup pairs one of the two fixed accounts with its rollup.
type AccountRollup struct {
	AccountID   string
	AccountName string
	Rollup      Rollup
}

// AccountRollups computes the rollup for both fixed accounts over the given
// session set, big account first.
func AccountRollups(sessions []model.Session) (big, small AccountRollup) {
	big = AccountRollup{
		AccountID:   model.AccountBig,
		AccountName: model.AccountBigName,
		Rollup:      Aggregate(ForAccount(sessions, model.AccountBig)),
	}
	small = AccountRollup{
		AccountID:   model.AccountSmall,
		AccountName: model.AccountSmallName,
		Rollup:      Aggregate(ForAccount(sessions, model.AccountSmall)),
	}
	return big, small
}
