// Package plates works out which barbell plates load a target weight.
package plates

import (
	"errors"
	"fmt"
	"math"

	"github.com/misterclayt0n/reps/internal/weight"
)

var ErrNoPlates = errors.New("no plates given")

// Plate is Quantity plates of Weight on each side of the bar.
type Plate struct {
	Weight   weight.Weight
	Quantity int
}

func (p Plate) String() string {
	return fmt.Sprintf("%dx %s", p.Quantity, p.Weight)
}

var (
	poundPlates    = []float64{45, 35, 25, 10, 5, 2.5}
	kilogramPlates = []float64{50, 25, 20, 15, 10, 5, 2.5, 1.25}
)

// BarWeight returns the empty bar for the unit.
func BarWeight(unit weight.Unit) float64 {
	if unit == weight.Kilograms {
		return 20
	}
	return 45
}

// Inventory returns the available plate sizes for the unit, heaviest first.
func Inventory(unit weight.Unit) []float64 {
	src := poundPlates
	if unit == weight.Kilograms {
		src = kilogramPlates
	}
	return append([]float64(nil), src...)
}

// maxPairs caps a single plate count so the int conversion stays exact.
const maxPairs = 1 << 53

// CalculatePlates loads the heaviest weight that does not exceed target, taking plates in
// pairs from the largest size down. A target lighter than the bar returns no plates.
func CalculatePlates(target weight.Weight) []Plate {
	unit := target.Unit()
	remaining := target.Value() - BarWeight(unit)
	if remaining < 0 {
		return []Plate{}
	}

	plates := []Plate{}
	for _, size := range Inventory(unit) {
		pair := 2 * size
		pairs := math.Min(math.Floor(remaining/pair), maxPairs)
		// The quotient can round up past what actually fits.
		if pairs*pair > remaining {
			pairs--
		}
		if pairs < 1 {
			continue
		}
		remaining -= pair * pairs
		plates = append(plates, Plate{
			Weight:   weight.MustNew(size, unit),
			Quantity: int(pairs),
		})
	}

	return plates
}

// CalculateTotalWeight sums a breakdown back into bar plus plates. The unit comes from
// the plates, so an empty breakdown is rejected.
func CalculateTotalWeight(plates []Plate) (weight.Weight, error) {
	if len(plates) == 0 {
		return weight.Weight{}, ErrNoPlates
	}
	return TotalWeight(plates[0].Weight.Unit(), plates)
}

// TotalWeight is CalculateTotalWeight with an explicit unit. No plates means the bare bar.
func TotalWeight(unit weight.Unit, plates []Plate) (weight.Weight, error) {
	total := BarWeight(unit)
	for _, p := range plates {
		if p.Weight.Unit() != unit {
			return weight.Weight{}, fmt.Errorf("%w: %s plate on a %s bar",
				weight.ErrUnitMismatch, p.Weight, unit.Abbreviation())
		}
		if p.Quantity < 1 {
			return weight.Weight{}, fmt.Errorf("invalid plate quantity %d for %s", p.Quantity, p.Weight)
		}
		total += 2 * p.Weight.Value() * float64(p.Quantity)
	}
	return weight.New(total, unit)
}
