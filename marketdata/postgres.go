package marketdata

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/meenmo/curvelib/calendar"
)

// PostgresStore reads holidays and discount factor nodes from a shared
// Postgres reference database.
//
// Expected tables:
//
//	holidays(calendar TEXT, holiday DATE)
//	discount_factors(curve TEXT, as_of DATE, node_date DATE, df DOUBLE PRECISION)
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects to the reference database and verifies the
// connection.
func OpenPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Holidays(ctx context.Context, id calendar.ID) ([]time.Time, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT holiday FROM holidays WHERE calendar = $1 ORDER BY holiday`, string(id))
	if err != nil {
		return nil, fmt.Errorf("query holidays %s: %w", id, err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		out = append(out, d.UTC().Truncate(24*time.Hour))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holidays: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: holidays for %s", ErrNoData, id)
	}
	return out, nil
}

func (s *PostgresStore) DiscountFactors(ctx context.Context, curveName string, asOf time.Time) (map[time.Time]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT node_date, df FROM discount_factors WHERE curve = $1 AND as_of = $2 ORDER BY node_date`,
		curveName, asOf.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("query discount factors %s: %w", curveName, err)
	}
	defer rows.Close()

	out := make(map[time.Time]float64)
	for rows.Next() {
		var d time.Time
		var df float64
		if err := rows.Scan(&d, &df); err != nil {
			return nil, fmt.Errorf("scan discount factor: %w", err)
		}
		out[d.UTC().Truncate(24*time.Hour)] = df
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

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
