// Package analytics records privacy-conscious page visits in sqlite.
// Client addresses are salted and hashed before they reach the database.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// Visit is a single recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// PathCount is a path and the number of visits it received.
type PathCount struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// Stats summarizes recorded visits.
type Stats struct {
	TotalVisitors    int64       `json:"total_visitors"`
	UniqueVisitors   int64       `json:"unique_visitors"`
	VisitorsToday    int64       `json:"visitors_today"`
	VisitorsThisWeek int64       `json:"visitors_this_week"`
	TopPaths         []PathCount `json:"top_paths"`
	RecentVisitors   []Visit     `json:"recent_visitors"`
}

const (
	topPathsLimit = 10
	recentLimit   = 50
)

// Store persists visits in a sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path and applies
// migrations. Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening visitor database: %w", err)
	}
	// sqlite allows a single writer; an in-memory database is also per connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to visitor database: %w", err)
	}

	s := &Store{db: db}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates the visitors table and its indexes.
func (s *Store) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,
			user_agent TEXT NOT NULL DEFAULT '',
			path TEXT NOT NULL,
			visited_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_visitors_visited_at ON visitors (visited_at)`,
		`CREATE INDEX IF NOT EXISTS idx_visitors_hashed_ip ON visitors (hashed_ip)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrating visitor database: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a visit. A zero Timestamp is replaced with the current time.
func (s *Store) Record(ctx context.Context, v Visit) error {
	if v.HashedIP == "" {
		return fmt.Errorf("recording visit: hashed ip is required")
	}
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// Stats computes visitor statistics relative to now. "Today" starts at
// midnight in now's location; "this week" is the trailing seven days.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT hashed_ip) FROM visitors`,
	).Scan(&stats.TotalVisitors, &stats.UniqueVisitors); err != nil {
		return nil, fmt.Errorf("counting visitors: %w", err)
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, midnight.Unix(),
	).Scan(&stats.VisitorsToday); err != nil {
		return nil, fmt.Errorf("counting today's visitors: %w", err)
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, weekAgo.Unix(),
	).Scan(&stats.VisitorsThisWeek); err != nil {
		return nil, fmt.Errorf("counting this week's visitors: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS visits
		FROM visitors
		GROUP BY path
		ORDER BY visits DESC, path ASC
		LIMIT ?`, topPathsLimit)
	if err != nil {
		return nil, fmt.Errorf("loading top paths: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Visits); err != nil {
			return nil, fmt.Errorf("scanning top path: %w", err)
		}
		stats.TopPaths = append(stats.TopPaths, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading top paths: %w", err)
	}

	stats.RecentVisitors, err = s.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Recent returns up to limit visits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("loading recent visitors: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0)
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading recent visitors: %w", err)
	}
	return visits, nil
}

// Cleanup deletes visits recorded before cutoff and returns how many were removed.
func (s *Store) Cleanup(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("cleaning up visitors: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleaning up visitors: %w", err)
	}
	if n > 0 {
		log.Printf("Privacy cleanup: removed %d visitor records older than %s", n, cutoff.Format(time.DateOnly))
	}
	return n, nil
}
