package daycount_test

import (
	"math"
	"testing"
	"time"

	"github.com/meenmo/curvelib/daycount"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFraction_SameDateIsZero(t *testing.T) {
	t.Parallel()

	d := date(2024, time.March, 15)
	for _, c := range []daycount.Convention{daycount.Act360, daycount.Act365F, daycount.E30360} {
		if got := c.Fraction(d, d); got != 0 {
			t.Fatalf("%s: Fraction(d, d) = %v, want 0", c, got)
		}
	}
}

func TestFraction_Act365F(t *testing.T) {
	t.Parallel()

	start := date(2024, time.January, 1)
	end := start.AddDate(0, 0, 91)
	want := 91.0 / 365.0
	if got := daycount.Act365F.Fraction(start, end); math.Abs(got-want) > 1e-15 {
		t.Fatalf("Fraction mismatch: got %.15f want %.15f", got, want)
	}
}

func TestFraction_Act360(t *testing.T) {
	t.Parallel()

	start := date(2024, time.January, 1)
	end := start.AddDate(1, 0, 0) // 2024 is a leap year
	want := 366.0 / 360.0
	if got := daycount.Act360.Fraction(start, end); math.Abs(got-want) > 1e-15 {
		t.Fatalf("Fraction mismatch: got %.15f want %.15f", got, want)
	}
}

func TestFraction_E30360_CapsAt30(t *testing.T) {
	t.Parallel()

	start := date(2024, time.January, 31)
	end := date(2024, time.July, 31)
	// Both month-ends cap at 30, so exactly half a year.
	if got := daycount.E30360.Fraction(start, end); math.Abs(got-0.5) > 1e-15 {
		t.Fatalf("Fraction mismatch: got %.15f want 0.5", got)
	}
}

func TestFraction_MonotoneInEnd(t *testing.T) {
	t.Parallel()

	start := date(2024, time.January, 1)
	prev := daycount.Act365F.Fraction(start, start)
	for i := 1; i <= 800; i++ {
		cur := daycount.Act365F.Fraction(start, start.AddDate(0, 0, i))
		if cur <= prev {
			t.Fatalf("fraction not increasing at day %d: %v <= %v", i, cur, prev)
		}
		prev = cur
	}
}
