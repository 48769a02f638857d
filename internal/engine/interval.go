package engine

import "math"

// Interval is a closed range [Min, Max] over the reals.
type Interval struct {
	Min, Max float64
}

// EmptyInterval and UniverseInterval are the canonical degenerate ranges.
// Treat them as constants.
var (
	EmptyInterval    = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

func (in Interval) Size() float64 { return in.Max - in.Min }

// Contains reports whether x lies in the closed interval.
func (in Interval) Contains(x float64) bool { return in.Min <= x && x <= in.Max }

// Surrounds reports whether x lies strictly inside the interval.
func (in Interval) Surrounds(x float64) bool { return in.Min < x && x < in.Max }

func (in Interval) Clamp(x float64) float64 {
	if x < in.Min {
		return in.Min
	}
	if x > in.Max {
		return in.Max
	}
	return x
}

// Expand widens the interval by delta, half on each side.
func (in Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: in.Min - padding, Max: in.Max + padding}
}

// Union returns the smallest interval covering both inputs.
func (in Interval) Union(other Interval) Interval {
	return Interval{
		Min: math.Min(in.Min, other.Min),
		Max: math.Max(in.Max, other.Max),
	}
}
