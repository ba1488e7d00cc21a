// Package model defines shared data structures.
package model

// HostStatus describes a host's employment state.
type HostStatus string

// Host statuses.
const (
	StatusActive   HostStatus = "Active"
	StatusInactive HostStatus = "Inactive"
	StatusOnLeave  HostStatus = "OnLeave"
)

// The two fixed sales accounts.
const (
	AccountBig   = "acc_big"
	AccountSmall = "acc_small"

	AccountBigName   = "anta_globalstore"
	AccountSmallName = "keepmovingofficial"
)

// PesoPerUSD is the fixed approximate rate applied once when a new session
// is logged without an explicit USD amount. Historical records keep whatever
// rate was in effect when they were entered.
const PesoPerUSD = 58.5

// AccountName maps an account id to its display name. This is the single
// place the denormalized Session.AccountName is derived from.
func AccountName(accountID string) string {
	if accountID == AccountSmall {
		return AccountSmallName
	}
	return AccountBigName
}

// Host is a streamer/presenter entity. Hosts are read-only: seeded at
// startup and never created or deleted through the UI.
type Host struct {
	ID       string
	Name     string
	Avatar   string
	JoinDate string
	Status   HostStatus
}

// Session is one logged live-streaming broadcast event.
//
// HostName and AccountName are denormalized display snapshots taken at
// create/edit time; they are not re-synchronized with later host renames.
// Revenue (PHP) and RevenueUSD are stored independently and are never
// derived from each other at read time.
type Session struct {
	ID              string
	HostID          string
	HostName        string
	AccountID       string
	AccountName     string
	Date            string
	StartTime       string
	DurationMinutes int
	Revenue         float64
	RevenueUSD      float64
	Views           int
}

// DateRange is an inclusive [Start, End] range of ISO dates. Comparison is
// lexicographic, which is correct for well-formed YYYY-MM-DD values.
type DateRange struct {
	Start string
	End   string
}

// Contains reports whether the date falls inside the range. An inverted
// range contains nothing.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}
