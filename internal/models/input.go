package models

import (
	"github.com/go-playground/validator/v10"

	"github.com/misterclayt0n/reps/internal/weight"
)

var validate = validator.New()

// FormulaBest asks for the formula picked by rep band.
const FormulaBest = "best"

// Input is what a caller (CLI flags, TUI state) hands to the calculator.
type Input struct {
	Weight  float64     `validate:"gte=0,lte=100000"`
	Unit    weight.Unit `validate:"gte=0,lte=1"`
	Reps    int         `validate:"gte=1,lte=255"`
	Formula string      `validate:"omitempty,oneof=best epley brzycki brzychi mcglothin kelley"`
}

func (in Input) Validate() error {
	return validate.Struct(in)
}
