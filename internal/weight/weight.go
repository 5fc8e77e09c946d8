package weight

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// PoundsToKilograms is the exact international avoirdupois pound in kilograms.
const PoundsToKilograms = 0.45359237

// MaxValue is the heaviest weight Parse accepts, in either unit.
const MaxValue = 100000

var (
	ErrNegativeWeight = errors.New("weight cannot be negative")
	ErrUnknownUnit    = errors.New("unknown weight unit")
	ErrUnitMismatch   = errors.New("weights are in different units")
	ErrTooHeavy       = errors.New("weight is too heavy")
)

type Unit int

const (
	Pounds Unit = iota
	Kilograms
)

func (u Unit) String() string {
	switch u {
	case Pounds:
		return "Pounds"
	case Kilograms:
		return "Kilograms"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Abbreviation returns the short label used when displaying a weight.
func (u Unit) Abbreviation() string {
	switch u {
	case Pounds:
		return "lbs"
	case Kilograms:
		return "kg"
	}
	return "?"
}

func (u Unit) Valid() bool {
	return u == Pounds || u == Kilograms
}

func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
	}
	return []byte(u.Abbreviation()), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUnit maps user input like "lbs" or "Kilograms" onto a Unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pounds", "pound", "lbs", "lb":
		return Pounds, nil
	case "kilograms", "kilogram", "kg", "kgs":
		return Kilograms, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Weight is a non-negative scalar tagged with its unit. The zero value is 0 lbs.
type Weight struct {
	value float64
	unit  Unit
}

// New returns ErrNegativeWeight for negative or NaN values.
func New(value float64, unit Unit) (Weight, error) {
	if value < 0 || math.IsNaN(value) {
		return Weight{}, fmt.Errorf("%w: %v", ErrNegativeWeight, value)
	}
	if !unit.Valid() {
		return Weight{}, fmt.Errorf("%w: %d", ErrUnknownUnit, int(unit))
	}
	return Weight{value: value, unit: unit}, nil
}

// MustNew is like New but panics. Only use it with values known to be valid.
func MustNew(value float64, unit Unit) Weight {
	w, err := New(value, unit)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Weight) Value() float64 { return w.value }
func (w Weight) Unit() Unit     { return w.unit }

func (w Weight) ToKilograms() Weight {
	if w.unit == Kilograms {
		return w
	}
	return Weight{value: w.value * PoundsToKilograms, unit: Kilograms}
}

func (w Weight) ToPounds() Weight {
	if w.unit == Pounds {
		return w
	}
	return Weight{value: w.value / PoundsToKilograms, unit: Pounds}
}

// To converts w into the given unit.
func (w Weight) To(unit Unit) (Weight, error) {
	switch unit {
	case Pounds:
		return w.ToPounds(), nil
	case Kilograms:
		return w.ToKilograms(), nil
	}
	return Weight{}, fmt.Errorf("%w: %d", ErrUnknownUnit, int(unit))
}

// Equal reports whether both value and unit match exactly.
func (w Weight) Equal(other Weight) bool {
	return w.unit == other.unit && w.value == other.value
}

// Compare orders two weights of the same unit. Convert first when units differ.
func (w Weight) Compare(other Weight) (int, error) {
	if w.unit != other.unit {
		return 0, fmt.Errorf("%w: %s vs %s", ErrUnitMismatch, w.unit.Abbreviation(), other.unit.Abbreviation())
	}
	switch {
	case w.value < other.value:
		return -1, nil
	case w.value > other.value:
		return 1, nil
	}
	return 0, nil
}

func (w Weight) String() string {
	return fmt.Sprintf("%.2f %s", w.value, w.unit.Abbreviation())
}

// Parse reads "225", "225lbs" or "100 kg". A missing suffix means def. Values above
// MaxValue are rejected with ErrTooHeavy.
func Parse(s string, def Unit) (Weight, error) {
	s = strings.TrimSpace(s)
	idx := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r)
	})

	number, suffix := s, ""
	if idx >= 0 {
		number, suffix = strings.TrimSpace(s[:idx]), s[idx:]
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Weight{}, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	if value > MaxValue {
		return Weight{}, fmt.Errorf("%w: %v (max %d)", ErrTooHeavy, value, MaxValue)
	}

	unit := def
	if suffix != "" {
		if unit, err = ParseUnit(suffix); err != nil {
			return Weight{}, err
		}
	}

	return New(value, unit)
}
