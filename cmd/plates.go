package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/reps/internal/estimate"
	"github.com/misterclayt0n/reps/internal/render"
	"github.com/misterclayt0n/reps/internal/weight"
)

var (
	platesUnit   string
	platesOutput string
)

var platesCmd = &cobra.Command{
	Use:   "plates [weight]",
	Short: "Show the plates to load per side for a target weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(platesOutput)
		if err != nil {
			return err
		}

		unit, err := resolveUnit(platesUnit)
		if err != nil {
			return err
		}

		target, err := weight.Parse(args[0], unit)
		if err != nil {
			return fmt.Errorf("invalid weight: %w", err)
		}

		b, err := estimate.Breakdown(target)
		if err != nil {
			return err
		}

		if format != render.FormatText {
			return render.Encode(cmd.OutOrStdout(), format, b)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "To get close to but not over %s\n", target)
		render.Breakdown(cmd.OutOrStdout(), b, target.Unit())
		return nil
	},
}

func init() {
	platesCmd.Flags().StringVarP(&platesUnit, "unit", "u", "", "Unit when the weight has none (lbs or kg)")
	platesCmd.Flags().StringVarP(&platesOutput, "output", "o", "text", "Output format: text, json, toml, yaml")
	rootCmd.AddCommand(platesCmd)
}
