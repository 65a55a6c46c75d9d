// Package marketdata supplies reference data to curve construction:
// holiday calendars and discount factor nodes, from bundled data or from a
// database-backed store.
package marketdata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meenmo/curvelib/calendar"
)

var (
	// ErrNoData is returned when a source holds nothing for the request.
	ErrNoData = errors.New("marketdata: no data")
	// ErrUnknownDriver is returned by Open for an unsupported driver name.
	ErrUnknownDriver = errors.New("marketdata: unknown driver")
)

// HolidaySource supplies holiday dates for a calendar.
type HolidaySource interface {
	Holidays(ctx context.Context, id calendar.ID) ([]time.Time, error)
}

// DiscountFactorSource supplies discount factor nodes for a named curve as
// of a curve date.
type DiscountFactorSource interface {
	DiscountFactors(ctx context.Context, curveName string, asOf time.Time) (map[time.Time]float64, error)
}

// Store combines both source interfaces over a closable backend.
type Store interface {
	HolidaySource
	DiscountFactorSource
	Close() error
}

// Open returns a store for the given driver ("postgres" or "sqlite3").
func Open(driver, dsn string) (Store, error) {
	switch driver {
	case "postgres":
		return OpenPostgres(dsn)
	case "sqlite3", "sqlite":
		return OpenSQLite(dsn)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}

// LoadCalendar builds a business day calendar from a holiday source.
func LoadCalendar(ctx context.Context, src HolidaySource, id calendar.ID) (*calendar.Calendar, error) {
	holidays, err := src.Holidays(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load calendar %s: %w", id, err)
	}
	return calendar.New(id, holidays), nil
}

// MapSource is a static in-memory implementation for development/testing.
type MapSource struct {
	holidays map[calendar.ID][]time.Time
	dfs      map[string]map[time.Time]float64
}

// NewMapSource builds a MapSource from explicit data. Either map may be nil.
func NewMapSource(holidays map[calendar.ID][]time.Time, dfs map[string]map[time.Time]float64) *MapSource {
	return &MapSource{holidays: holidays, dfs: dfs}
}

func (m *MapSource) Holidays(_ context.Context, id calendar.ID) ([]time.Time, error) {
	list, ok := m.holidays[id]
	if !ok {
		return nil, fmt.Errorf("%w: holidays for %s", ErrNoData, id)
	}
	out := make([]time.Time, len(list))
	copy(out, list)
	return out, nil
}

func (m *MapSource) DiscountFactors(_ context.Context, curveName string, _ time.Time) (map[time.Time]float64, error) {
	nodes, ok := m.dfs[curveName]
	if !ok {
		return nil, fmt.Errorf("%w: discount factors for %s", ErrNoData, curveName)
	}
	out := make(map[time.Time]float64, len(nodes))
	for k, v := range nodes {
		out[k] = v
	}
	return out, nil
}
