// Package daycount implements day count conventions for measuring
// year fractions between two dates.
package daycount

import "time"

// Convention identifies a day count convention.
type Convention string

const (
	Act360  Convention = "ACT/360"
	Act365F Convention = "ACT/365F"
	E30360  Convention = "30E/360"
)

// Days returns the whole and fractional day count between two dates.
func Days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

// Fraction computes the year fraction between start and end under the
// convention. Fraction(d, d) == 0 and the result is monotone in end for
// the ACT conventions.
func (c Convention) Fraction(start, end time.Time) float64 {
	switch c {
	case Act360:
		return Days(start, end) / 360.0
	case Act365F:
		return Days(start, end) / 365.0
	case E30360:
		// 30E/360 ISDA (Eurobond basis): D1 and D2 capped at 30.
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
	default:
		return Days(start, end) / 365.0
	}
}
