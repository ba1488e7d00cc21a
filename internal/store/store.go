// Package store holds the in-memory record collections.
//
// The store runs SQLite on ":memory:": records live only in process memory
// and every run starts from the seed dataset again.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/verte-zerg/streamsync/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SearchLimit caps how many rows a search returns for display.
const SearchLimit = 100

// Store wraps the in-memory collections of hosts and sessions.
type Store struct {
	db *sql.DB
}

// Open creates the in-memory database and applies the schema.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// All connections of the pool must see the same in-memory database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS hosts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			avatar TEXT NOT NULL,
			join_date TEXT NOT NULL,
			status TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			host_id TEXT NOT NULL,
			host_name TEXT NOT NULL,
			account_id TEXT NOT NULL,
			account_name TEXT NOT NULL,
			date TEXT NOT NULL,
			start_time TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL,
			revenue REAL NOT NULL,
			revenue_usd REAL NOT NULL,
			views INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Seed loads the fixed dataset. It is called once at startup.
func (s *Store) Seed(ctx context.Context, hosts []model.Host, sessions []model.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for _, h := range hosts {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO hosts (id, name, avatar, join_date, status) VALUES (?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Avatar, h.JoinDate, string(h.Status),
		); err != nil {
			return err
		}
	}
	for _, sess := range sessions {
		if err = insertSessionTx(ctx, tx, sess); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListHosts returns all hosts in seed order.
func (s *Store) ListHosts(ctx context.Context) ([]model.Host, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, avatar, join_date, status FROM hosts ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var hosts []model.Host
	for rows.Next() {
		var h model.Host
		var status string
		if err := rows.Scan(&h.ID, &h.Name, &h.Avatar, &h.JoinDate, &status); err != nil {
			return nil, err
		}
		h.Status = model.HostStatus(status)
		hosts = append(hosts, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return hosts, nil
}

// ActiveHosts returns the hosts eligible for new-session logging.
func (s *Store) ActiveHosts(ctx context.Context) ([]model.Host, error) {
	hosts, err := s.ListHosts(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]model.Host, 0, len(hosts))
	for _, h := range hosts {
		if h.Status == model.StatusActive {
			active = append(active, h)
		}
	}
	return active, nil
}

const sessionColumns = `id, host_id, host_name, account_id, account_name, date, start_time, duration_minutes, revenue, revenue_usd, views`

// ListSessions returns all sessions in insertion order.
func (s *Store) ListSessions(ctx context.Context) ([]model.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	return scanSessions(rows)
}

// GetSession looks up one session by id. The second result reports whether
// it exists.
func (s *Store) GetSession(ctx context.Context, id string) (model.Session, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return model.Session{}, false, nil
	}
	if err != nil {
		return model.Session{}, false, err
	}
	return sess, true, nil
}

// InsertSession appends a new session. When the id is empty a fresh
// timestamp-derived one is generated. Duplicate business data (same host,
// date, and account) is legal: it represents multiple sessions per day.
func (s *Store) InsertSession(ctx context.Context, sess model.Session) (model.Session, error) {
	if sess.ID == "" {
		id, err := s.nextSessionID(ctx)
		if err != nil {
			return model.Session{}, err
		}
		sess.ID = id
	}
	if err := insertSessionDB(ctx, s.db, sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

// UpdateSession replaces the full record matching the session's id. An
// unknown id is a no-op.
func (s *Store) UpdateSession(ctx context.Context, sess model.Session) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET host_id = ?, host_name = ?, account_id = ?, account_name = ?,
			date = ?, start_time = ?, duration_minutes = ?, revenue = ?, revenue_usd = ?, views = ?
		 WHERE id = ?`,
		sess.HostID, sess.HostName, sess.AccountID, sess.AccountName,
		sess.Date, sess.StartTime, sess.DurationMinutes, sess.Revenue, sess.RevenueUSD, sess.Views,
		sess.ID,
	)
	return err
}

// DeleteSession removes the record matching id. Deleting an unknown id is a
// no-op, not an error.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

// SearchSessions matches the term case-insensitively against host and
// account names and as a plain substring against the date. Results come
// back ordered by date descending and capped at SearchLimit; the second
// result reports whether the cap was applied.
func (s *Store) SearchSessions(ctx context.Context, term string) ([]model.Session, bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions
		 WHERE instr(lower(host_name), lower(?)) > 0
			OR instr(lower(account_name), lower(?)) > 0
			OR instr(date, ?) > 0
		 ORDER BY date DESC
		 LIMIT ?`,
		term, term, term, SearchLimit+1)
	if err != nil {
		return nil, false, err
	}
	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, false, err
	}
	if len(sessions) > SearchLimit {
		return sessions[:SearchLimit], true, nil
	}
	return sessions, false, nil
}

func (s *Store) nextSessionID(ctx context.Context) (string, error) {
	millis := time.Now().UnixMilli()
	for {
		id := fmt.Sprintf("s%d", millis)
		var exists int
		err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM sessions WHERE id = ?`, id).Scan(&exists)
		if err != nil {
			return "", err
		}
		if exists == 0 {
			return id, nil
		}
		millis++
	}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertSessionDB(ctx context.Context, db execer, sess model.Session) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO sessions (`+sessionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.HostID, sess.HostName, sess.AccountID, sess.AccountName,
		sess.Date, sess.StartTime, sess.DurationMinutes, sess.Revenue, sess.RevenueUSD, sess.Views,
	)
	return err
}

func insertSessionTx(ctx context.Context, tx *sql.Tx, sess model.Session) error {
	return insertSessionDB(ctx, tx, sess)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (model.Session, error) {
	var sess model.Session
	err := row.Scan(
		&sess.ID, &sess.HostID, &sess.HostName, &sess.AccountID, &sess.AccountName,
		&sess.Date, &sess.StartTime, &sess.DurationMinutes, &sess.Revenue, &sess.RevenueUSD, &sess.Views,
	)
	return sess, err
}

func scanSessions(rows *sql.Rows) ([]model.Session, error) {
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	var sessions []model.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
