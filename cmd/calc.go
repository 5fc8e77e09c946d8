package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/reps/internal/estimate"
	"github.com/misterclayt0n/reps/internal/logging"
	"github.com/misterclayt0n/reps/internal/models"
	"github.com/misterclayt0n/reps/internal/render"
	"github.com/misterclayt0n/reps/internal/utils"
	"github.com/misterclayt0n/reps/internal/weight"
)

var (
	calcWeight  string
	calcReps    int
	calcUnit    string
	calcFormula string
	calcOutput  string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Estimate a 1RM from a set and show the plates to load",
	Example: `  reps calc -w 225 -r 5
  reps calc -w 100kg -r 8 -f brzycki -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.FromContext(cmd.Context())

		format, err := render.ParseFormat(calcOutput)
		if err != nil {
			return err
		}

		unit, err := resolveUnit(calcUnit)
		if err != nil {
			return err
		}

		w, err := weight.Parse(calcWeight, unit)
		if err != nil {
			return fmt.Errorf("invalid --weight: %w", err)
		}

		reps := calcReps
		if !cmd.Flags().Changed("reps") {
			reps = cfg.Defaults.Reps
		}
		if clamped := utils.ClampReps(reps); clamped != reps {
			log.Warn().Int("reps", reps).Int("clamped", clamped).Msg("reps out of range")
			reps = clamped
		}

		formula := calcFormula
		if !cmd.Flags().Changed("formula") {
			formula = cfg.Defaults.Formula
		}

		est, err := estimate.Compute(cmd.Context(), models.Input{
			Weight:  w.Value(),
			Unit:    w.Unit(),
			Reps:    reps,
			Formula: formula,
		})
		if err != nil {
			return fmt.Errorf("Failed to calculate 1RM: %w", err)
		}

		if format != render.FormatText {
			return render.Encode(cmd.OutOrStdout(), format, est)
		}
		render.Estimate(cmd.OutOrStdout(), est)
		return nil
	},
}

func init() {
	calcCmd.Flags().StringVarP(&calcWeight, "weight", "w", "", "Weight lifted, optionally with a unit (225, 100kg)")
	calcCmd.Flags().IntVarP(&calcReps, "reps", "r", 5, "Reps performed")
	calcCmd.Flags().StringVarP(&calcUnit, "unit", "u", "", "Unit when --weight has none (lbs or kg)")
	calcCmd.Flags().StringVarP(&calcFormula, "formula", "f", models.FormulaBest, "Formula: best, epley, brzycki, mcglothin, kelley")
	calcCmd.Flags().StringVarP(&calcOutput, "output", "o", "text", "Output format: text, json, toml, yaml")

	calcCmd.MarkFlagRequired("weight")

	rootCmd.AddCommand(calcCmd)
}
