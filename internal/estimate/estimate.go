// Package estimate runs the whole calculation for one input: 1RM, the spread across
// formulas, and plate breakdowns for both the input weight and the estimated max.
package estimate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/misterclayt0n/reps/internal/logging"
	"github.com/misterclayt0n/reps/internal/models"
	"github.com/misterclayt0n/reps/internal/onerm"
	"github.com/misterclayt0n/reps/internal/plates"
	"github.com/misterclayt0n/reps/internal/weight"
)

// ResolveFormula maps a formula name onto a Formula. Empty and "best" pick by rep band.
func ResolveFormula(name string, reps int) (onerm.Formula, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == models.FormulaBest {
		return onerm.BestFormula(reps), nil
	}
	return onerm.ParseFormula(name)
}

func Compute(ctx context.Context, in models.Input) (*models.Estimate, error) {
	log := logging.FromContext(ctx)

	in.Formula = strings.ToLower(strings.TrimSpace(in.Formula))
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	w, err := weight.New(in.Weight, in.Unit)
	if err != nil {
		return nil, err
	}

	formula, err := ResolveFormula(in.Formula, in.Reps)
	if err != nil {
		return nil, err
	}

	oneRM, err := onerm.CalcWithFormula(w, in.Reps, formula)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate 1RM: %w", err)
	}

	est := &models.Estimate{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Weight:    w.Value(),
		Unit:      w.Unit(),
		Reps:      in.Reps,
		Formula:   formula,
		OneRM:     oneRM.Value(),
	}

	// Every formula is defined below 37 reps. Past that only the chosen one is reported.
	lo, hi, err := onerm.CalcRange(w, in.Reps)
	switch {
	case err == nil:
		est.Formulas, err = allFormulas(w, in.Reps)
		if err != nil {
			return nil, err
		}
		est.Min = pick(est.Formulas, lo)
		est.Max = pick(est.Formulas, hi)
	default:
		log.Debug().Err(err).Int("reps", in.Reps).Msg("formula spread unavailable")
		only := models.FormulaEstimate{Formula: formula, Value: oneRM.Value()}
		est.Formulas = []models.FormulaEstimate{only}
		est.Min, est.Max = only, only
		lo, hi = oneRM, oneRM
	}

	if est.PlatesForWeight, err = Breakdown(w); err != nil {
		return nil, err
	}
	if est.PlatesForOneRM, err = Breakdown(oneRM); err != nil {
		return nil, err
	}
	if est.PlatesForMin, err = Breakdown(lo); err != nil {
		return nil, err
	}
	if est.PlatesForMax, err = Breakdown(hi); err != nil {
		return nil, err
	}

	log.Debug().
		Str("id", est.ID).
		Str("weight", w.String()).
		Int("reps", in.Reps).
		Stringer("formula", est.Formula).
		Str("one_rm", oneRM.String()).
		Msg("estimate computed")

	return est, nil
}

// Breakdown loads target onto the bar and reports what actually ends up on it.
func Breakdown(target weight.Weight) (models.Breakdown, error) {
	unit := target.Unit()
	b := models.Breakdown{
		Target: target.Value(),
		Bar:    plates.BarWeight(unit),
		Plates: []models.PlateEntry{},
	}

	if target.Value() < b.Bar {
		b.BelowBar = true
		return b, nil
	}

	ps := plates.CalculatePlates(target)
	loaded, err := plates.TotalWeight(unit, ps)
	if err != nil {
		return models.Breakdown{}, fmt.Errorf("failed to total plates: %w", err)
	}
	b.Loaded = loaded.Value()

	for _, p := range ps {
		b.Plates = append(b.Plates, models.PlateEntry{
			Weight:   p.Weight.Value(),
			Unit:     p.Weight.Unit(),
			Quantity: p.Quantity,
		})
	}

	return b, nil
}

// Table lists every formula for reps 1..maxReps, stopping before a rep count where a
// formula is undefined.
func Table(w weight.Weight, maxReps int) ([]models.TableRow, error) {
	var rows []models.TableRow
	for reps := 1; reps <= maxReps; reps++ {
		ests, err := allFormulas(w, reps)
		if err != nil {
			if len(rows) == 0 {
				return nil, err
			}
			break
		}
		rows = append(rows, models.TableRow{
			Reps:     reps,
			Best:     onerm.BestFormula(reps),
			Formulas: ests,
		})
	}
	return rows, nil
}

func allFormulas(w weight.Weight, reps int) ([]models.FormulaEstimate, error) {
	out := make([]models.FormulaEstimate, 0, len(onerm.Formulas()))
	for _, f := range onerm.Formulas() {
		est, err := onerm.CalcWithFormula(w, reps, f)
		if err != nil {
			return nil, err
		}
		out = append(out, models.FormulaEstimate{Formula: f, Value: est.Value()})
	}
	return out, nil
}

func pick(ests []models.FormulaEstimate, w weight.Weight) models.FormulaEstimate {
	for _, e := range ests {
		if e.Value == w.Value() {
			return e
		}
	}
	return models.FormulaEstimate{Value: w.Value()}
}
