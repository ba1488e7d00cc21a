package stats

import (
	"testing"

	"github.com/verte-zerg/streamsync/internal/model"
)

func testHosts() []model.Host {
	return []model.Host{
		{ID: "h1", Name: "Maricel", Status: model.StatusActive},
		{ID: "h2", Name: "Jasmine", Status: model.StatusActive},
		{ID: "h3", Name: "Kristine", Status: model.StatusInactive},
	}
}

func TestRankHostsOrdering(t *testing.T) {
	sessions := []model.Session{
		session("s1", "h1", model.AccountBig, "2025-11-05", 60, 1000, 17),
		session("s2", "h2", model.AccountSmall, "2025-11-06", 60, 3000, 51),
		session("s3", "h1", model.AccountBig, "2025-11-07", 60, 500, 9),
	}
	ranked := RankHosts(testHosts(), sessions)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked hosts, got %d", len(ranked))
	}
	if ranked[0].Host.ID != "h2" || ranked[1].Host.ID != "h1" {
		t.Fatalf("unexpected order: %s, %s", ranked[0].Host.ID, ranked[1].Host.ID)
	}
	if ranked[1].Rollup.TotalRevenue != 1500 {
		t.Fatalf("expected h1 total 1500, got %f", ranked[1].Rollup.TotalRevenue)
	}
}

func TestRankHostsDropsZeroCount(t *testing.T) {
	sessions := []model.Session{
		session("s1", "h1", model.AccountBig, "2025-11-05", 60, 1000, 17),
	}
	ranked := RankHosts(testHosts(), sessions)
	for _, hr := range ranked {
		if hr.Rollup.Count == 0 {
			t.Fatalf("host %s has zero sessions but was ranked", hr.Host.ID)
		}
	}
	if len(ranked) != 1 {
		t.Fatalf("expected 1 ranked host, got %d", len(ranked))
	}
}

func TestRankHostsStableTies(t *testing.T) {
	sessions := []model.Session{
		session("s1", "h1", model.AccountBig, "2025-11-05", 60, 1000, 17),
		session("s2", "h2", model.AccountSmall, "2025-11-06", 90, 1000, 17),
	}
	ranked := RankHosts(testHosts(), sessions)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked hosts, got %d", len(ranked))
	}
	// Ties keep roster order.
	if ranked[0].Host.ID != "h1" || ranked[1].Host.ID != "h2" {
		t.Fatalf("unexpected tie order: %s, %s", ranked[0].Host.ID, ranked[1].Host.ID)
	}
}

func TestAccountRollups(t *testing.T) {
	sessions := []model.Session{
		session("s1", "h1", model.AccountBig, "2025-11-05", 60, 1000, 17),
		session("s2", "h2", model.AccountSmall, "2025-11-06", 60, 500, 9),
		session("s3", "h1", model.AccountBig, "2025-11-07", 60, 2000, 34),
	}
	big, small := AccountRollups(sessions)
	if big.AccountName != model.AccountBigName || small.AccountName != model.AccountSmallName {
		t.Fatalf("unexpected account names: %q, %q", big.AccountName, small.AccountName)
	}
	if big.Rollup.Count != 2 || small.Rollup.Count != 1 {
		t.Fatalf("unexpected counts: big=%d small=%d", big.Rollup.Count, small.Rollup.Count)
	}
	if big.Rollup.TotalRevenueUSD != 51 {
		t.Fatalf("expected big account USD 51, got %f", big.Rollup.TotalRevenueUSD)
	}
}
