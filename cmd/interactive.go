package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/misterclayt0n/reps/internal/tui"
	"github.com/misterclayt0n/reps/internal/utils"
	"github.com/misterclayt0n/reps/internal/weight"
)

var (
	interactiveWeight string
	interactiveReps   int
	interactiveUnit   string
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "tui"},
	Short:   "Open the interactive calculator",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("interactive mode needs a terminal, use `reps calc` instead")
		}

		unit, err := resolveUnit(interactiveUnit)
		if err != nil {
			return err
		}

		w, err := weight.Parse(interactiveWeight, unit)
		if err != nil {
			return fmt.Errorf("invalid --weight: %w", err)
		}

		reps := interactiveReps
		if !cmd.Flags().Changed("reps") {
			reps = cfg.Defaults.Reps
		}

		m := tui.New(cmd.Context(), w, utils.ClampReps(reps), cfg.Defaults.Formula)
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
			return fmt.Errorf("Failed to run interactive mode: %w", err)
		}
		return nil
	},
}

func init() {
	interactiveCmd.Flags().StringVarP(&interactiveWeight, "weight", "w", "225", "Starting weight")
	interactiveCmd.Flags().IntVarP(&interactiveReps, "reps", "r", 5, "Starting reps")
	interactiveCmd.Flags().StringVarP(&interactiveUnit, "unit", "u", "", "Starting unit (lbs or kg)")
	rootCmd.AddCommand(interactiveCmd)
}
