package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TenorUnit is the period unit of a tenor code.
type TenorUnit byte

const (
	UnitDay   TenorUnit = 'D'
	UnitWeek  TenorUnit = 'W'
	UnitMonth TenorUnit = 'M'
	UnitYear  TenorUnit = 'Y'
)

// Tenor is a parsed tenor code such as 1W, 3M, or 10Y.
type Tenor struct {
	N    int
	Unit TenorUnit
}

// ParseTenor parses codes like "1W", "3M", "10Y", "91D". Case and
// surrounding whitespace are ignored. Negative counts are accepted
// ("-3M" shifts backward).
func ParseTenor(code string) (Tenor, error) {
	s := strings.TrimSpace(strings.ToUpper(code))
	if len(s) < 2 {
		return Tenor{}, fmt.Errorf("invalid tenor code %q", code)
	}
	unit := TenorUnit(s[len(s)-1])
	switch unit {
	case UnitDay, UnitWeek, UnitMonth, UnitYear:
	default:
		return Tenor{}, fmt.Errorf("invalid tenor code %q", code)
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Tenor{}, fmt.Errorf("invalid tenor code %q", code)
	}
	return Tenor{N: n, Unit: unit}, nil
}

// String renders the canonical code.
func (t Tenor) String() string {
	return fmt.Sprintf("%d%c", t.N, t.Unit)
}

// Years converts the tenor to a year fraction on a 365-day basis for days
// and weeks, and calendar-period fractions for months and years.
func (t Tenor) Years() float64 {
	switch t.Unit {
	case UnitDay:
		return float64(t.N) / 365.0
	case UnitWeek:
		return float64(t.N) * 7.0 / 365.0
	case UnitMonth:
		return float64(t.N) / 12.0
	default:
		return float64(t.N)
	}
}

// Shift advances d by the tenor period, unadjusted for business days.
// Month and year shifts use EDATE semantics: landing past a month end
// clamps to the month end instead of spilling into the next month.
func (t Tenor) Shift(d time.Time) time.Time {
	switch t.Unit {
	case UnitDay:
		return d.AddDate(0, 0, t.N)
	case UnitWeek:
		return d.AddDate(0, 0, 7*t.N)
	case UnitMonth:
		return addMonths(d, t.N)
	default:
		return addMonths(d, 12*t.N)
	}
}

// addMonths behaves like Excel's EDATE, avoiding Go's month normalization
// surprises (Jan 31 + 1M is Feb 29/28, not Mar 2/3).
func addMonths(t time.Time, months int) time.Time {
	target := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	if target.Month() == t.AddDate(0, months, 0).Month() {
		return t.AddDate(0, months, 0)
	}

	d := t.AddDate(0, months, 0)
	origMonth := d.Month()
	for d.Month() == origMonth {
		d = d.AddDate(0, 0, -1)
	}
	return d
}
