package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/reps/internal/models"
	"github.com/misterclayt0n/reps/internal/render"
	"github.com/misterclayt0n/reps/internal/weight"
)

var (
	convertTo     string
	convertUnit   string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert [weight]",
	Short: "Convert a weight between pounds and kilograms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(convertOutput)
		if err != nil {
			return err
		}

		unit, err := resolveUnit(convertUnit)
		if err != nil {
			return err
		}

		from, err := weight.Parse(args[0], unit)
		if err != nil {
			return fmt.Errorf("invalid weight: %w", err)
		}

		// Without --to, flip to the other unit.
		target := weight.Kilograms
		if from.Unit() == weight.Kilograms {
			target = weight.Pounds
		}
		if convertTo != "" {
			if target, err = weight.ParseUnit(convertTo); err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}
		}

		to, err := from.To(target)
		if err != nil {
			return err
		}

		c := models.Conversion{
			From:     from.Value(),
			FromUnit: from.Unit(),
			To:       to.Value(),
			ToUnit:   to.Unit(),
		}
		if format != render.FormatText {
			return render.Encode(cmd.OutOrStdout(), format, c)
		}
		render.Conversion(cmd.OutOrStdout(), c)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "Target unit (lbs or kg)")
	convertCmd.Flags().StringVarP(&convertUnit, "unit", "u", "", "Unit when the weight has none (lbs or kg)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "text", "Output format: text, json, toml, yaml")
	rootCmd.AddCommand(convertCmd)
}
