package curve

import (
	"time"

	"github.com/meenmo/curvelib/calendar"
	"github.com/meenmo/curvelib/daycount"
)

// BusinessDayCalendar adjusts a date by a coded tenor under a roll
// convention. Implementations must be pure functions of their inputs for a
// fixed holiday set; ForwardCurve memoizes on that assumption.
type BusinessDayCalendar interface {
	AdjustedDate(date time.Time, tenorCode string, roll calendar.RollConvention) time.Time
}

// ForwardCurve models the term structure of an index, mapping a fixing time
// to the offset between payment time and fixing time. It carries the name of
// an associated discount curve (funding or collateral), if any.
//
// The payment offset is either a constant tenor in years or derived from a
// tenor code, business day calendar, and roll convention. The two modes are
// fixed at construction.
type ForwardCurve struct {
	base
	discountCurveName string
	offset            paymentOffset
}

// paymentOffset resolves a fixing time to a payment-minus-fixing offset.
// Exactly one of the two implementations is attached to a curve.
type paymentOffset interface {
	resolve(referenceDate time.Time, fixingTime float64) float64
}

type fixedOffset float64

func (o fixedOffset) resolve(time.Time, float64) float64 {
	return float64(o)
}

type codedOffset struct {
	tenorCode string
	cal       BusinessDayCalendar
	roll      calendar.RollConvention
	memo      map[float64]float64
}

func (o *codedOffset) resolve(referenceDate time.Time, fixingTime float64) float64 {
	if offset, ok := o.memo[fixingTime]; ok {
		return offset
	}

	// Advance the reference date by the whole number of days in the fixing
	// time. The int conversion truncates toward zero; that bias is part of
	// the curve's contract and downstream numbers depend on it.
	paymentDate := referenceDate.AddDate(0, 0, int(fixingTime*365))
	paymentDate = o.cal.AdjustedDate(paymentDate, o.tenorCode, o.roll)

	// Payment time is always measured ACT/365, independent of the day count
	// the rest of the model uses.
	paymentTime := daycount.Act365F.Fraction(referenceDate, paymentDate)

	offset := paymentTime - fixingTime
	o.memo[fixingTime] = offset
	return offset
}

// NewForwardCurve constructs a forward curve whose payment offset is derived
// from a tenor code (e.g. "3M") via the given calendar and roll convention.
// The offset is fixing-time dependent because calendar rolling is
// date-sensitive.
//
// A nil calendar or empty roll convention is a programming error and panics.
func NewForwardCurve(name string, referenceDate time.Time, tenorCode string, cal BusinessDayCalendar, roll calendar.RollConvention, discountCurveName string) *ForwardCurve {
	if cal == nil {
		panic("curve: NewForwardCurve: nil business day calendar")
	}
	if roll == "" {
		panic("curve: NewForwardCurve: empty roll convention")
	}
	return &ForwardCurve{
		base: base{
			name:          name,
			referenceDate: referenceDate,
			interpolation: InterpolationLinear,
			extrapolation: ExtrapolationConstant,
		},
		discountCurveName: discountCurveName,
		offset: &codedOffset{
			tenorCode: tenorCode,
			cal:       cal,
			roll:      roll,
			memo:      make(map[float64]float64),
		},
	}
}

// NewFixedOffsetForwardCurve constructs a forward curve with a constant
// payment offset in years, applied uniformly to every fixing time.
func NewFixedOffsetForwardCurve(name string, referenceDate time.Time, offsetYears float64, discountCurveName string) *ForwardCurve {
	return &ForwardCurve{
		base: base{
			name:          name,
			referenceDate: referenceDate,
			interpolation: InterpolationLinear,
			extrapolation: ExtrapolationConstant,
		},
		discountCurveName: discountCurveName,
		offset:            fixedOffset(offsetYears),
	}
}

// DiscountCurveName returns the name of the associated discount curve, or ""
// when none was configured.
func (f *ForwardCurve) DiscountCurveName() string {
	return f.discountCurveName
}

// PaymentOffset returns the payment time minus fixing time offset at the
// given fixing time (in years relative to the reference date). Fixing times
// at or before zero are permitted and follow the same day-advance and
// rolling logic.
//
// In coded-offset mode results are memoized per fixing time, keyed by exact
// float equality. The memo map is deliberately unsynchronized: concurrent
// misses on the same key recompute the same pure function and store equal
// values, so last-write-wins is harmless. Adding a lock here would only
// avoid redundant work, not fix a correctness problem.
func (f *ForwardCurve) PaymentOffset(fixingTime float64) float64 {
	return f.offset.resolve(f.referenceDate, fixingTime)
}
