package marketdata

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meenmo/curvelib/calendar"
)

// SQLiteStore is a local file-backed reference data store, useful as an
// offline cache of the shared Postgres data.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initializes) a local reference database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS holidays (
		calendar TEXT NOT NULL,
		holiday TEXT NOT NULL,
		UNIQUE(calendar, holiday)
	);

	CREATE TABLE IF NOT EXISTS discount_factors (
		curve TEXT NOT NULL,
		as_of TEXT NOT NULL,
		node_date TEXT NOT NULL,
		df REAL NOT NULL,
		UNIQUE(curve, as_of, node_date)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Holidays(ctx context.Context, id calendar.ID) ([]time.Time, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT holiday FROM holidays WHERE calendar = ? ORDER BY holiday`, string(id))
	if err != nil {
		return nil, fmt.Errorf("query holidays %s: %w", id, err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("parse holiday %q: %w", raw, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holidays: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: holidays for %s", ErrNoData, id)
	}
	return out, nil
}

func (s *SQLiteStore) DiscountFactors(ctx context.Context, curveName string, asOf time.Time) (map[time.Time]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT node_date, df FROM discount_factors WHERE curve = ? AND as_of = ? ORDER BY node_date`,
		curveName, asOf.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("query discount factors %s: %w", curveName, err)
	}
	defer rows.Close()

	out := make(map[time.Time]float64)
	for rows.Next() {
		var raw string
		var df float64
		if err := rows.Scan(&raw, &df); err != nil {
			return nil, fmt.Errorf("scan discount factor: %w", err)
		}
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("parse node date %q: %w", raw, err)
		}
		out[d] = df
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate discount factors: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: discount factors for %s as of %s",
			ErrNoData, curveName, asOf.Format("2006-01-02"))
	}
	return out, nil
}

// SaveHolidays replaces the stored holiday list for a calendar.
func (s *SQLiteStore) SaveHolidays(ctx context.Context, id calendar.ID, holidays []time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM holidays WHERE calendar = ?`, string(id)); err != nil {
		return fmt.Errorf("clear holidays %s: %w", id, err)
	}
	for _, h := range holidays {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO holidays (calendar, holiday) VALUES (?, ?)`,
			string(id), h.Format("2006-01-02")); err != nil {
			return fmt.Errorf("insert holiday: %w", err)
		}
	}
	return tx.Commit()
}

// SaveDiscountFactors upserts discount factor nodes for a curve date.
func (s *SQLiteStore) SaveDiscountFactors(ctx context.Context, curveName string, asOf time.Time, dfs map[time.Time]float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for d, df := range dfs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO discount_factors (curve, as_of, node_date, df) VALUES (?, ?, ?, ?)
			 ON CONFLICT(curve, as_of, node_date) DO UPDATE SET df = excluded.df`,
			curveName, asOf.Format("2006-01-02"), d.Format("2006-01-02"), df); err != nil {
			return fmt.Errorf("insert discount factor: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
