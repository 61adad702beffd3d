// Package rangesync keeps a numeric input and its slider in agreement.
package rangesync

import (
	"errors"
	"math"
)

// ErrDegenerateRange is returned when a range has no width
var ErrDegenerateRange = errors.New("range minimum equals maximum")

// PercentPosition returns where value sits between min and max as a
// percentage. Values outside the range produce positions outside [0,100];
// callers that drive a fill indicator should Clamp first.
func PercentPosition(value, min, max float64) (float64, error) {
	if max == min {
		return 0, ErrDegenerateRange
	}
	return (value - min) / (max - min) * 100, nil
}

// Bounds describes a slider range and its step
type Bounds struct {
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Step float64 `yaml:"step" json:"step"`
}

// Clamp limits v to the bounds
func (b Bounds) Clamp(v float64) float64 {
	return math.Max(b.Min, math.Min(b.Max, v))
}

// Snap moves v to the nearest step counted from Min, then clamps it
func (b Bounds) Snap(v float64) float64 {
	if b.Step <= 0 {
		return b.Clamp(v)
	}
	steps := math.Round((v - b.Min) / b.Step)
	return b.Clamp(b.Min + steps*b.Step)
}

// Position returns the fill position of v in [0,100]
func (b Bounds) Position(v float64) (float64, error) {
	return PercentPosition(b.Clamp(v), b.Min, b.Max)
}

// Contains reports whether v lies inside the bounds
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}
