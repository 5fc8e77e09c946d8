package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/misterclayt0n/reps/internal/weight"
)

const (
	MinReps = 1
	MaxReps = 255
)

// ParseNumber reads a number typed by the user. Anything unparseable counts as zero.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ClampReps keeps a rep count inside MinReps..MaxReps.
func ClampReps(reps int) int {
	if reps < MinReps {
		return MinReps
	}
	if reps > MaxReps {
		return MaxReps
	}
	return reps
}

// ClampWeight keeps a weight inside 0..weight.MaxValue.
func ClampWeight(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return math.Min(v, weight.MaxValue)
}

// WeightIncrement is the smallest jump loadable with a pair of the lightest common plates.
func WeightIncrement(unit weight.Unit) float64 {
	if unit == weight.Kilograms {
		return 2.5
	}
	return 5
}

// RoundToIncrement rounds v to the nearest multiple of inc.
func RoundToIncrement(v, inc float64) float64 {
	if inc <= 0 {
		return v
	}
	return math.Round(v/inc) * inc
}
