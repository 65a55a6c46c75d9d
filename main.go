package main

import (
	"fmt"
	"time"

	"github.com/meenmo/curvelib/calendar"
	"github.com/meenmo/curvelib/curve"
)

func main() {
	referenceDate := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	cal := calendar.Bundled(calendar.TARGET)
	euribor3M := curve.NewForwardCurve(
		"EURIBOR3M", referenceDate, "3M", cal, calendar.ModifiedFollowing, "ESTR-OIS")

	fmt.Printf("curve: %s (discounting on %s)\n", euribor3M.Name(), euribor3M.DiscountCurveName())
	for _, fixing := range []float64{0.25, 0.5, 1.0, 2.0, 5.0} {
		offset := euribor3M.PaymentOffset(fixing)
		fmt.Printf("  fixing %5.2fy  offset %+.6fy  payment %8.6fy\n", fixing, offset, fixing+offset)
	}

	flat := curve.NewFixedOffsetForwardCurve("CD91D", referenceDate, 0.25, "")
	fmt.Printf("curve: %s fixed offset %.4fy\n", flat.Name(), flat.PaymentOffset(0))
}
