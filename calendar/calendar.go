// Package calendar provides business-day calendars, date roll conventions,
// and tenor-coded date shifting for schedule and curve construction.
package calendar

import (
	"fmt"
	"time"
)

// ID identifies a holiday calendar.
type ID string

const (
	TARGET ID = "TARGET"
	JPN    ID = "JPN"
	USD    ID = "USD"
	KRW    ID = "KRW"
	// WeekendsOnly has no holidays beyond Saturday/Sunday.
	WeekendsOnly ID = "WEEKENDS"
)

// RollConvention selects how a non-business day is rolled.
type RollConvention string

const (
	Unadjusted        RollConvention = "UNADJUSTED"
	Following         RollConvention = "FOLLOWING"
	ModifiedFollowing RollConvention = "MODIFIED_FOLLOWING"
	Preceding         RollConvention = "PRECEDING"
)

// ParseRollConvention maps a config/CLI string to a RollConvention.
func ParseRollConvention(s string) (RollConvention, error) {
	switch RollConvention(s) {
	case Unadjusted, Following, ModifiedFollowing, Preceding:
		return RollConvention(s), nil
	}
	return "", fmt.Errorf("unknown roll convention %q", s)
}

// Calendar is a holiday-set backed business day calendar.
// The zero value is not usable; construct via New or Bundled.
type Calendar struct {
	id       ID
	holidays map[string]struct{}
}

// New builds a calendar from explicit holiday dates.
func New(id ID, holidays []time.Time) *Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Format("2006-01-02")] = struct{}{}
	}
	return &Calendar{id: id, holidays: set}
}

// Bundled returns a calendar backed by the holiday data shipped with the
// library. Unknown IDs fall back to a weekends-only calendar.
func Bundled(id ID) *Calendar {
	list := bundledHolidays[id]
	set := make(map[string]struct{}, len(list))
	for _, h := range list {
		set[h] = struct{}{}
	}
	return &Calendar{id: id, holidays: set}
}

// ID returns the calendar's identifier.
func (c *Calendar) ID() ID {
	return c.id
}

func (c *Calendar) isHoliday(t time.Time) bool {
	_, ok := c.holidays[t.Format("2006-01-02")]
	return ok
}

// IsBusinessDay checks weekends and the holiday set.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !c.isHoliday(t)
}

// Roll moves t onto a business day per the roll convention.
func (c *Calendar) Roll(t time.Time, roll RollConvention) time.Time {
	switch roll {
	case Unadjusted:
		return t
	case Following:
		return c.following(t)
	case ModifiedFollowing:
		origMonth := t.Month()
		t = c.following(t)
		if t.Month() != origMonth {
			t = c.preceding(t.AddDate(0, 0, -1))
		}
		return t
	case Preceding:
		return c.preceding(t)
	default:
		panic(fmt.Sprintf("calendar: unknown roll convention %q", roll))
	}
}

func (c *Calendar) following(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func (c *Calendar) preceding(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// AddBusinessDays advances n business days (n can be negative).
func (c *Calendar) AddBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if c.IsBusinessDay(t) {
			n -= step
		}
	}
	return t
}

// AdjustedDate shifts date by the coded tenor (e.g. "3M") and rolls the
// result onto a business day per the roll convention.
//
// The result is a pure function of the inputs for a fixed holiday set.
// An unparseable tenor code panics: codes come from trade/curve setup, not
// from runtime inputs.
func (c *Calendar) AdjustedDate(date time.Time, tenorCode string, roll RollConvention) time.Time {
	tenor, err := ParseTenor(tenorCode)
	if err != nil {
		panic(fmt.Sprintf("calendar: %v", err))
	}
	return c.Roll(tenor.Shift(date), roll)
}

// LastBusinessDayOfMonth returns the last business day of the month containing t.
func (c *Calendar) LastBusinessDayOfMonth(t time.Time) time.Time {
	nextMonth := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return c.AddBusinessDays(nextMonth, -1)
}

// IsEndOfMonth checks if t is the last business day of its month.
func (c *Calendar) IsEndOfMonth(t time.Time) bool {
	return t.Equal(c.LastBusinessDayOfMonth(t))
}
