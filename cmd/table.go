package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/reps/internal/estimate"
	"github.com/misterclayt0n/reps/internal/models"
	"github.com/misterclayt0n/reps/internal/render"
	"github.com/misterclayt0n/reps/internal/utils"
	"github.com/misterclayt0n/reps/internal/weight"
)

var (
	tableWeight  string
	tableUnit    string
	tableMaxReps int
	tableOutput  string
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Compare every 1RM formula across a range of reps",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(tableOutput)
		if err != nil {
			return err
		}

		unit, err := resolveUnit(tableUnit)
		if err != nil {
			return err
		}

		w, err := weight.Parse(tableWeight, unit)
		if err != nil {
			return fmt.Errorf("invalid --weight: %w", err)
		}

		rows, err := estimate.Table(w, utils.ClampReps(tableMaxReps))
		if err != nil {
			return fmt.Errorf("Failed to build table: %w", err)
		}

		t := models.RepTable{
			Weight: w.Value(),
			Unit:   w.Unit(),
			Rows:   rows,
		}
		if format != render.FormatText {
			return render.Encode(cmd.OutOrStdout(), format, t)
		}
		render.Table(cmd.OutOrStdout(), t)
		return nil
	},
}

func init() {
	tableCmd.Flags().StringVarP(&tableWeight, "weight", "w", "", "Weight lifted, optionally with a unit")
	tableCmd.Flags().StringVarP(&tableUnit, "unit", "u", "", "Unit when --weight has none (lbs or kg)")
	tableCmd.Flags().IntVarP(&tableMaxReps, "max-reps", "m", 16, "Highest rep count to list")
	tableCmd.Flags().StringVarP(&tableOutput, "output", "o", "text", "Output format: text, json, toml, yaml")

	tableCmd.MarkFlagRequired("weight")

	rootCmd.AddCommand(tableCmd)
}
