package models

import (
	"time"

	"github.com/misterclayt0n/reps/internal/onerm"
	"github.com/misterclayt0n/reps/internal/weight"
)

// Estimate is the serializable result of one calculation.
type Estimate struct {
	ID        string            `json:"id" toml:"id" yaml:"id"`
	CreatedAt time.Time         `json:"created_at" toml:"created_at" yaml:"created_at"`
	Weight    float64           `json:"weight" toml:"weight" yaml:"weight"`
	Unit      weight.Unit       `json:"unit" toml:"unit" yaml:"unit"`
	Reps      int               `json:"reps" toml:"reps" yaml:"reps"`
	Formula   onerm.Formula     `json:"formula" toml:"formula" yaml:"formula"`
	OneRM     float64           `json:"one_rm" toml:"one_rm" yaml:"one_rm"`
	Min       FormulaEstimate   `json:"min" toml:"min" yaml:"min"`
	Max       FormulaEstimate   `json:"max" toml:"max" yaml:"max"`
	Formulas  []FormulaEstimate `json:"formulas" toml:"formulas" yaml:"formulas"`

	PlatesForWeight Breakdown `json:"plates_for_weight" toml:"plates_for_weight" yaml:"plates_for_weight"`
	PlatesForOneRM  Breakdown `json:"plates_for_one_rm" toml:"plates_for_one_rm" yaml:"plates_for_one_rm"`
	PlatesForMin    Breakdown `json:"plates_for_min" toml:"plates_for_min" yaml:"plates_for_min"`
	PlatesForMax    Breakdown `json:"plates_for_max" toml:"plates_for_max" yaml:"plates_for_max"`
}

type FormulaEstimate struct {
	Formula onerm.Formula `json:"formula" toml:"formula" yaml:"formula"`
	Value   float64       `json:"value" toml:"value" yaml:"value"`
}

// Breakdown is the plate loading for a target weight. Loaded is zero when BelowBar is set.
type Breakdown struct {
	Target   float64      `json:"target" toml:"target" yaml:"target"`
	Bar      float64      `json:"bar" toml:"bar" yaml:"bar"`
	BelowBar bool         `json:"below_bar" toml:"below_bar" yaml:"below_bar"`
	Loaded   float64      `json:"loaded" toml:"loaded" yaml:"loaded"`
	Plates   []PlateEntry `json:"plates" toml:"plates" yaml:"plates"`
}

// PlateEntry is Quantity plates of Weight per side.
type PlateEntry struct {
	Weight   float64     `json:"weight" toml:"weight" yaml:"weight"`
	Unit     weight.Unit `json:"unit" toml:"unit" yaml:"unit"`
	Quantity int         `json:"quantity" toml:"quantity" yaml:"quantity"`
}

// TableRow is one line of the reps table: every formula at a given rep count.
type TableRow struct {
	Reps     int               `json:"reps" toml:"reps" yaml:"reps"`
	Best     onerm.Formula     `json:"best" toml:"best" yaml:"best"`
	Formulas []FormulaEstimate `json:"formulas" toml:"formulas" yaml:"formulas"`
}

// RepTable is every formula across a range of rep counts for one weight.
type RepTable struct {
	Weight float64     `json:"weight" toml:"weight" yaml:"weight"`
	Unit   weight.Unit `json:"unit" toml:"unit" yaml:"unit"`
	Rows   []TableRow  `json:"rows" toml:"rows" yaml:"rows"`
}

// Conversion is a weight expressed in both units.
type Conversion struct {
	From     float64     `json:"from" toml:"from" yaml:"from"`
	FromUnit weight.Unit `json:"from_unit" toml:"from_unit" yaml:"from_unit"`
	To       float64     `json:"to" toml:"to" yaml:"to"`
	ToUnit   weight.Unit `json:"to_unit" toml:"to_unit" yaml:"to_unit"`
}
