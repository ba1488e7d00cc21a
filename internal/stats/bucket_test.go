package stats

import (
	"testing"

	"github.com/verte-zerg/streamsync/internal/model"
)

func TestBucketByDay(t *testing.T) {
	sessions := []model.Session{
		session("s1", "h1", model.AccountBig, "2025-11-06", 60, 1000, 17),
		session("s2", "h2", model.AccountSmall, "2025-11-05", 60, 500, 9),
		session("s3", "h1", model.AccountBig, "2025-11-06", 60, 2000, 34),
	}
	buckets := BucketByDay(sessions)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Date != "2025-11-05" || buckets[1].Date != "2025-11-06" {
		t.Fatalf("buckets not ascending: %s, %s", buckets[0].Date, buckets[1].Date)
	}
	if buckets[1].Revenue != 3000 || buckets[1].RevenueUSD != 51 {
		t.Fatalf("unexpected sums: %+v", buckets[1])
	}
	if len(buckets[1].Hosts) != 1 || buckets[1].Hosts[0] != "host-h1" {
		t.Fatalf("expected deduplicated host names, got %v", buckets[1].Hosts)
	}
}

func TestBucketByDayEmpty(t *testing.T) {
	if buckets := BucketByDay(nil); len(buckets) != 0 {
		t.Fatalf("expected no buckets, got %d", len(buckets))
	}
}

func TestBucketByAccount(t *testing.T) {
	sessions := []model.Session{
		session("s1", "h1", model.AccountBig, "2025-11-06", 60, 1000, 20),
		session("s2", "h2", model.AccountSmall, "2025-11-05", 60, 500, 10),
		session("s3", "h1", model.AccountSmall, "2025-11-06", 60, 700, 12),
	}
	series := BucketByAccount(sessions)
	if len(series.Dates) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(series.Dates))
	}
	if series.Dates[0] != "2025-11-05" || series.Dates[1] != "2025-11-06" {
		t.Fatalf("dates not ascending: %v", series.Dates)
	}
	// Both series stay aligned on the shared axis: days without revenue for
	// one account carry an explicit zero.
	if series.BigUSD[0] != 0 || series.SmallUSD[0] != 10 {
		t.Fatalf("unexpected first day values: big=%f small=%f", series.BigUSD[0], series.SmallUSD[0])
	}
	if series.BigUSD[1] != 20 || series.SmallUSD[1] != 12 {
		t.Fatalf("unexpected second day values: big=%f small=%f", series.BigUSD[1], series.SmallUSD[1])
	}
}
