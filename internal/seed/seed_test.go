package seed

import (
	"testing"

	"github.com/verte-zerg/streamsync/internal/model"
)

func TestHostsRoster(t *testing.T) {
	hosts := Hosts()
	if len(hosts) != 5 {
		t.Fatalf("expected 5 hosts, got %d", len(hosts))
	}
	active := 0
	for _, h := range hosts {
		if h.ID == "" || h.Name == "" || h.JoinDate == "" {
			t.Fatalf("incomplete host: %+v", h)
		}
		if h.Status == model.StatusActive {
			active++
		}
	}
	if active != 3 {
		t.Fatalf("expected 3 active hosts, got %d", active)
	}
}

func TestSessionsDataset(t *testing.T) {
	sessions := Sessions()
	if len(sessions) == 0 {
		t.Fatalf("expected seed sessions")
	}

	ids := map[string]bool{}
	for _, s := range sessions {
		if ids[s.ID] {
			t.Fatalf("duplicate session id %q", s.ID)
		}
		ids[s.ID] = true
		if s.Date < LastMonthStart || s.Date > CurrentMonthEnd {
			t.Fatalf("session %s outside the seeded window: %s", s.ID, s.Date)
		}
		if s.HostName == "" || s.AccountName == "" {
			t.Fatalf("missing denormalized names: %+v", s)
		}
		if s.RevenueUSD <= 0 || s.Revenue <= 0 {
			t.Fatalf("non-positive revenue: %+v", s)
		}
	}
}

// October records carry a different effective conversion rate than
// November ones; the USD amounts must not be re-derivable from the PHP
// amounts with a single rate.
func TestSessionsHistoricalRates(t *testing.T) {
	sessions := Sessions()
	var octRate, novRate float64
	for _, s := range sessions {
		rate := s.Revenue / s.RevenueUSD
		if s.Date < CurrentMonthStart {
			octRate = rate
		} else {
			novRate = rate
		}
	}
	if octRate == 0 || novRate == 0 {
		t.Fatalf("expected sessions in both months")
	}
	if diff := octRate - novRate; diff > -0.1 && diff < 0.1 {
		t.Fatalf("expected distinct monthly rates, got %.2f and %.2f", octRate, novRate)
	}
}
