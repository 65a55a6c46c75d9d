// Package curve provides term structure objects used in interest rate
// pricing: a generic curve base, forward curves with payment-offset
// resolution, and discount curves built from discount factor nodes.
package curve

import "time"

// InterpolationMethod selects how curve values are interpolated between nodes.
type InterpolationMethod string

const (
	InterpolationLinear    InterpolationMethod = "LINEAR"
	InterpolationLogLinear InterpolationMethod = "LOG_LINEAR"
)

// ExtrapolationMethod selects behavior outside the node range.
type ExtrapolationMethod string

const (
	ExtrapolationConstant ExtrapolationMethod = "CONSTANT"
)

// Curve is the identity every term structure carries.
type Curve interface {
	// Name identifies the curve, e.g. "EURIBOR3M" or "ESTR-OIS".
	Name() string
	// ReferenceDate is the date defining t=0 for the curve.
	ReferenceDate() time.Time
}

// base carries curve identity and interpolation metadata, embedded by the
// concrete curve types.
type base struct {
	name          string
	referenceDate time.Time
	interpolation InterpolationMethod
	extrapolation ExtrapolationMethod
}

func (b base) Name() string {
	return b.name
}

func (b base) ReferenceDate() time.Time {
	return b.referenceDate
}

// Interpolation returns the curve's interpolation method.
func (b base) Interpolation() InterpolationMethod {
	return b.interpolation
}

// Extrapolation returns the curve's extrapolation method.
func (b base) Extrapolation() ExtrapolationMethod {
	return b.extrapolation
}
