// Package onerm estimates a one-repetition maximum from a submaximal set.
package onerm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/misterclayt0n/reps/internal/weight"
)

var (
	ErrUnknownFormula = errors.New("unknown 1RM formula")
	ErrRepsOutOfRange = errors.New("reps out of range for formula")
)

type Formula int

const (
	Epley Formula = iota
	Brzycki
	McGlothin
	Kelley
)

// Formulas returns every formula in display order.
func Formulas() []Formula {
	return []Formula{Epley, Brzycki, McGlothin, Kelley}
}

func (f Formula) String() string {
	switch f {
	case Epley:
		return "Epley"
	case Brzycki:
		return "Brzycki"
	case McGlothin:
		return "McGlothin"
	case Kelley:
		return "Kelley"
	}
	return fmt.Sprintf("Formula(%d)", int(f))
}

func (f Formula) MarshalText() ([]byte, error) {
	if f < Epley || f > Kelley {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormula, int(f))
	}
	return []byte(strings.ToLower(f.String())), nil
}

func (f *Formula) UnmarshalText(text []byte) error {
	parsed, err := ParseFormula(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFormula accepts formula names case-insensitively. "brzychi" is kept as an alias.
func ParseFormula(s string) (Formula, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "epley":
		return Epley, nil
	case "brzycki", "brzychi":
		return Brzycki, nil
	case "mcglothin":
		return McGlothin, nil
	case "kelley":
		return Kelley, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormula, s)
}

// BestFormula picks the formula that tracks best for the given rep band.
// Anything outside 1..15 falls back to Epley.
func BestFormula(reps int) Formula {
	switch {
	case reps >= 1 && reps <= 6:
		return Epley
	case reps >= 7 && reps <= 10:
		return Brzycki
	case reps >= 11 && reps <= 15:
		return McGlothin
	default:
		return Epley
	}
}

// Calc estimates the 1RM with BestFormula(reps).
func Calc(w weight.Weight, reps int) (weight.Weight, error) {
	return CalcWithFormula(w, reps, BestFormula(reps))
}

// CalcWithFormula applies f to the scalar value of w. The result keeps w's unit.
// Brzycki is undefined from 37 reps on, so those inputs return ErrRepsOutOfRange.
func CalcWithFormula(w weight.Weight, reps int, f Formula) (weight.Weight, error) {
	if reps < 0 {
		return weight.Weight{}, fmt.Errorf("%w: %s with %d reps", ErrRepsOutOfRange, f, reps)
	}

	v, r := w.Value(), float64(reps)

	var est float64
	switch f {
	case Epley:
		est = v * (1 + 0.0333*r)
	case Brzycki:
		if reps >= 37 {
			return weight.Weight{}, fmt.Errorf("%w: %s with %d reps", ErrRepsOutOfRange, f, reps)
		}
		est = v * (36 / (37 - r))
	case McGlothin:
		est = v * (1 + 0.025*r)
	case Kelley:
		est = v * (1 + 0.0278*r)
	default:
		return weight.Weight{}, fmt.Errorf("%w: %d", ErrUnknownFormula, int(f))
	}

	return weight.New(est, w.Unit())
}

// CalcRange returns the lowest and highest estimate across all formulas.
func CalcRange(w weight.Weight, reps int) (min, max weight.Weight, err error) {
	for i, f := range Formulas() {
		est, err := CalcWithFormula(w, reps, f)
		if err != nil {
			return weight.Weight{}, weight.Weight{}, err
		}
		if i == 0 || est.Value() < min.Value() {
			min = est
		}
		if i == 0 || est.Value() > max.Value() {
			max = est
		}
	}
	return min, max, nil
}
