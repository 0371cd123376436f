package core

import (
	"fmt"
	"math"
)

// Interval is a range of real numbers from Min to Max
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains no values
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

	// UniverseInterval contains every value
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns the width of the interval. Negative for an empty interval.
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether min <= x <= max
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether min < x < max
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp restricts x to the interval. Panics if Min > Max.
func (i Interval) Clamp(x float64) float64 {
	if i.Min > i.Max {
		panic(fmt.Sprintf("core: clamp on invalid interval [%g, %g]", i.Min, i.Max))
	}
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}
