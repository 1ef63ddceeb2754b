package store

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sophiafu/portfolio/internal/theme"
)

// VisitorMetric is one recorded page view. The address is stored hashed.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// PageStat counts views of one path.
type PageStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// AdminStats feeds the admin dashboard.
type AdminStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TopPages         []PageStat      `json:"top_pages"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
	DarkThemes       int64           `json:"dark_themes"`
	LightThemes      int64           `json:"light_themes"`
}

// RetentionPeriod is how long visitor rows are kept.
const RetentionPeriod = 365 * 24 * time.Hour

// RecordVisit stores a page view.
func (s *Store) RecordVisit(hashedIP, userAgent, path string, at time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, at.UTC())
	return errors.Wrap(err, "record visit")
}

// CleanupVisits removes visitor rows older than the cutoff and returns how
// many were deleted.
func (s *Store) CleanupVisits(before time.Time) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM visitors WHERE timestamp < ?`, before.UTC())
	if err != nil {
		return 0, errors.Wrap(err, "cleanup visitors")
	}
	rowsDeleted, _ := result.RowsAffected()
	return rowsDeleted, nil
}

// RecentVisitors returns the latest page views, newest first.
func (s *Store) RecentVisitors(limit int) ([]VisitorMetric, error) {
	rows, err := s.db.Query(`
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query visitors")
	}
	defer rows.Close()

	var visitors []VisitorMetric
	for rows.Next() {
		var visitor VisitorMetric
		if err := rows.Scan(&visitor.ID, &visitor.HashedIP, &visitor.UserAgent, &visitor.Path, &visitor.Timestamp); err != nil {
			continue
		}
		visitors = append(visitors, visitor)
	}
	return visitors, rows.Err()
}

// Stats gathers the dashboard numbers as of now.
func (s *Store) Stats(now time.Time) (*AdminStats, error) {
	stats := &AdminStats{}
	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{dayStart}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
		{&stats.DarkThemes, `SELECT COUNT(*) FROM preferences WHERE key = ? AND value = ?`, []any{theme.StorageKey, theme.Dark}},
		{&stats.LightThemes, `SELECT COUNT(*) FROM preferences WHERE key = ? AND value = ?`, []any{theme.StorageKey, theme.Light}},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query, c.args...).Scan(c.dst); err != nil {
			return nil, errors.Wrap(err, "count visitors")
		}
	}

	var err error
	stats.TopPages, err = s.TopPages(10)
	if err != nil {
		return nil, err
	}

	stats.RecentVisitors, err = s.RecentVisitors(50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// TopPages returns the most viewed paths.
func (s *Store) TopPages(limit int) ([]PageStat, error) {
	rows, err := s.db.Query(`
		SELECT path, COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query top pages")
	}
	defer rows.Close()

	var pages []PageStat
	for rows.Next() {
		var page PageStat
		if err := rows.Scan(&page.Path, &page.Views); err != nil {
			continue
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}
