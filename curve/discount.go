package curve

import (
	"math"
	"sort"
	"time"

	"github.com/meenmo/curvelib/daycount"
)

// DiscountCurve is a discount factor term structure built from explicit
// nodes, with log-linear interpolation between nodes and flat-forward
// extrapolation outside them. The curve time axis uses ACT/365F, the
// standard convention for discount curve interpolation.
type DiscountCurve struct {
	base
	dayCount daycount.Convention
	nodes    []time.Time
	dfs      map[time.Time]float64
}

// NewDiscountCurveFromDFs creates a discount curve from discount factor
// nodes keyed by date. At least one node is required; panics otherwise.
func NewDiscountCurveFromDFs(name string, referenceDate time.Time, dfs map[time.Time]float64) *DiscountCurve {
	if len(dfs) == 0 {
		panic("curve: NewDiscountCurveFromDFs: no discount factor nodes")
	}

	nodes := make([]time.Time, 0, len(dfs))
	copied := make(map[time.Time]float64, len(dfs))
	for d, df := range dfs {
		nodes = append(nodes, d)
		copied[d] = df
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Before(nodes[j]) })

	return &DiscountCurve{
		base: base{
			name:          name,
			referenceDate: referenceDate,
			interpolation: InterpolationLogLinear,
			extrapolation: ExtrapolationConstant,
		},
		dayCount: daycount.Act365F,
		nodes:    nodes,
		dfs:      copied,
	}
}

// DF returns the discount factor at t, interpolating log-linearly between
// nodes. Outside the node range the nearest node pair extrapolates at its
// implied flat forward rate.
func (c *DiscountCurve) DF(t time.Time) float64 {
	if df, ok := c.dfs[t]; ok {
		return df
	}
	if len(c.nodes) == 1 {
		return c.dfs[c.nodes[0]]
	}

	d1, d2 := bracketOrBoundary(c.nodes, t)
	df1 := c.dfs[d1]
	df2 := c.dfs[d2]

	t1 := c.dayCount.Fraction(c.referenceDate, d1)
	t2 := c.dayCount.Fraction(c.referenceDate, d2)
	tTarget := c.dayCount.Fraction(c.referenceDate, t)

	if t2 == t1 {
		return df1
	}
	forwardRate := math.Log(df1/df2) / (t2 - t1)
	return df1 * math.Exp(-forwardRate*(tTarget-t1))
}

// ZeroRate returns the continuously compounded zero rate at t in percent.
func (c *DiscountCurve) ZeroRate(t time.Time) float64 {
	yearFrac := c.dayCount.Fraction(c.referenceDate, t)
	if yearFrac == 0 {
		return 0
	}
	return -math.Log(c.DF(t)) / yearFrac * 100
}

// Nodes returns the curve's node dates in ascending order.
func (c *DiscountCurve) Nodes() []time.Time {
	out := make([]time.Time, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// bracketOrBoundary finds two adjacent dates that bracket the target.
// If the target is outside the range, it returns the nearest boundary pair.
func bracketOrBoundary(dates []time.Time, target time.Time) (d1, d2 time.Time) {
	if len(dates) < 2 {
		panic("curve: bracketOrBoundary: need at least 2 dates")
	}

	idx := sort.Search(len(dates), func(i int) bool {
		return !dates[i].Before(target)
	})

	if idx <= 0 {
		return dates[0], dates[1]
	}
	if idx >= len(dates) {
		return dates[len(dates)-2], dates[len(dates)-1]
	}
	return dates[idx-1], dates[idx]
}
