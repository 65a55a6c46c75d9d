package curve_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/meenmo/curvelib/calendar"
	"github.com/meenmo/curvelib/curve"
	"github.com/meenmo/curvelib/daycount"
)

// Property: a fixed-offset curve returns its configured constant for every
// fixing time, including negative ones.
func TestProperty_FixedOffsetInvariance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	ref := date(2024, time.January, 1)

	properties.Property("fixed offset ignores the fixing time", prop.ForAll(
		func(offset, fixing float64) bool {
			fc := curve.NewFixedOffsetForwardCurve("IDX", ref, offset, "")
			return fc.PaymentOffset(fixing) == offset
		},
		gen.Float64Range(-2, 2),
		gen.Float64Range(-50, 50),
	))

	properties.TestingRun(t)
}

// Property: in coded mode, offset == paymentTime - fixingTime holds exactly
// for any calendar shift, where paymentTime is the ACT/365 fraction from the
// reference date to the adjusted payment date.
func TestProperty_OffsetAlgebra(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	ref := date(2024, time.January, 1)

	properties.Property("offset equals payment time minus fixing time", prop.ForAll(
		func(fixing float64, shiftDays int) bool {
			cal := &shiftCalendar{days: shiftDays}
			fc := curve.NewForwardCurve("IDX", ref, "3M", cal, calendar.Following, "")

			paymentDate := ref.AddDate(0, 0, int(fixing*365)+shiftDays)
			paymentTime := daycount.Act365F.Fraction(ref, paymentDate)
			return fc.PaymentOffset(fixing) == paymentTime-fixing
		},
		gen.Float64Range(-10, 40),
		gen.IntRange(-30, 30),
	))

	properties.TestingRun(t)
}

// Property: repeated queries hit the memo and stay bit-identical, and two
// identically-constructed curves agree everywhere.
func TestProperty_CacheAndDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	ref := date(2024, time.January, 1)

	properties.Property("cached and recomputed values agree across curves", prop.ForAll(
		func(fixing float64) bool {
			a := curve.NewForwardCurve("IDX", ref, "6M", &identityCalendar{}, calendar.Following, "")
			b := curve.NewForwardCurve("IDX", ref, "6M", &identityCalendar{}, calendar.Following, "")

			first := a.PaymentOffset(fixing)
			second := a.PaymentOffset(fixing)
			return first == second && first == b.PaymentOffset(fixing)
		},
		gen.Float64Range(-10, 40),
	))

	properties.TestingRun(t)
}
