package calendar_test

import (
	"testing"
	"time"

	"github.com/meenmo/curvelib/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDay_Weekend(t *testing.T) {
	t.Parallel()

	cal := calendar.Bundled(calendar.WeekendsOnly)
	sat := date(2024, time.January, 6)
	if cal.IsBusinessDay(sat) {
		t.Fatalf("expected Saturday to be non-business")
	}
	if !cal.IsBusinessDay(date(2024, time.January, 8)) {
		t.Fatalf("expected Monday to be business")
	}
}

func TestIsBusinessDay_Holiday(t *testing.T) {
	t.Parallel()

	cal := calendar.Bundled(calendar.TARGET)
	if cal.IsBusinessDay(date(2024, time.December, 25)) {
		t.Fatalf("expected Dec 25 to be a TARGET holiday")
	}
}

func TestRoll_Following(t *testing.T) {
	t.Parallel()

	cal := calendar.Bundled(calendar.WeekendsOnly)
	sat := date(2024, time.January, 6)
	got := cal.Roll(sat, calendar.Following)
	if want := date(2024, time.January, 8); !got.Equal(want) {
		t.Fatalf("Roll mismatch: got %s want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestRoll_ModifiedFollowing_MonthEnd(t *testing.T) {
	t.Parallel()

	cal := calendar.Bundled(calendar.WeekendsOnly)
	// Saturday 2024-03-30: Following crosses into April, so MF rolls back
	// to Friday 2024-03-29.
	got := cal.Roll(date(2024, time.March, 30), calendar.ModifiedFollowing)
	if want := date(2024, time.March, 29); !got.Equal(want) {
		t.Fatalf("Roll mismatch: got %s want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestRoll_PrecedingAndUnadjusted(t *testing.T) {
	t.Parallel()

	cal := calendar.Bundled(calendar.WeekendsOnly)
	sun := date(2024, time.January, 7)
	if got := cal.Roll(sun, calendar.Preceding); !got.Equal(date(2024, time.January, 5)) {
		t.Fatalf("Preceding mismatch: got %s", got.Format("2006-01-02"))
	}
	if got := cal.Roll(sun, calendar.Unadjusted); !got.Equal(sun) {
		t.Fatalf("Unadjusted must not move the date")
	}
}

func TestAddBusinessDays(t *testing.T) {
	t.Parallel()

	cal := calendar.Bundled(calendar.WeekendsOnly)
	fri := date(2024, time.January, 5)
	if got := cal.AddBusinessDays(fri, 1); !got.Equal(date(2024, time.January, 8)) {
		t.Fatalf("+1 business day mismatch: got %s", got.Format("2006-01-02"))
	}
	if got := cal.AddBusinessDays(date(2024, time.January, 8), -1); !got.Equal(fri) {
		t.Fatalf("-1 business day mismatch: got %s", got.Format("2006-01-02"))
	}
}

func TestAdjustedDate_ShiftThenRoll(t *testing.T) {
	t.Parallel()

	cal := calendar.Bundled(calendar.WeekendsOnly)
	// 2024-03-15 + 3M = 2024-06-15, a Saturday; Following rolls to Monday.
	got := cal.AdjustedDate(date(2024, time.March, 15), "3M", calendar.Following)
	if want := date(2024, time.June, 17); !got.Equal(want) {
		t.Fatalf("AdjustedDate mismatch: got %s want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestAdjustedDate_BadTenorPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for bad tenor code")
		}
	}()
	cal := calendar.Bundled(calendar.WeekendsOnly)
	cal.AdjustedDate(date(2024, time.March, 15), "3Q", calendar.Following)
}

func TestParseTenor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		want calendar.Tenor
	}{
		{"3M", calendar.Tenor{N: 3, Unit: calendar.UnitMonth}},
		{"1w", calendar.Tenor{N: 1, Unit: calendar.UnitWeek}},
		{" 10Y ", calendar.Tenor{N: 10, Unit: calendar.UnitYear}},
		{"91D", calendar.Tenor{N: 91, Unit: calendar.UnitDay}},
		{"-3M", calendar.Tenor{N: -3, Unit: calendar.UnitMonth}},
	}
	for _, tc := range cases {
		got, err := calendar.ParseTenor(tc.code)
		if err != nil {
			t.Fatalf("ParseTenor(%q) error: %v", tc.code, err)
		}
		if got != tc.want {
			t.Fatalf("ParseTenor(%q) = %+v, want %+v", tc.code, got, tc.want)
		}
	}

	for _, bad := range []string{"", "M", "3", "3Q", "x3M"} {
		if _, err := calendar.ParseTenor(bad); err == nil {
			t.Fatalf("ParseTenor(%q) expected error", bad)
		}
	}
}

func TestTenorShift_MonthEndClamp(t *testing.T) {
	t.Parallel()

	tenor := calendar.Tenor{N: 1, Unit: calendar.UnitMonth}
	got := tenor.Shift(date(2024, time.January, 31))
	if want := date(2024, time.February, 29); !got.Equal(want) {
		t.Fatalf("Shift mismatch: got %s want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}

	got = tenor.Shift(date(2023, time.January, 31))
	if want := date(2023, time.February, 28); !got.Equal(want) {
		t.Fatalf("Shift mismatch: got %s want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestTenorYears(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		want float64
	}{
		{"3M", 0.25},
		{"1Y", 1.0},
		{"2W", 14.0 / 365.0},
		{"73D", 0.2},
	}
	for _, tc := range cases {
		tenor, err := calendar.ParseTenor(tc.code)
		if err != nil {
			t.Fatalf("ParseTenor(%q) error: %v", tc.code, err)
		}
		if got := tenor.Years(); got != tc.want {
			t.Fatalf("Years(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
