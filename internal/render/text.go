// Package render prints calculator results, either as colored text or encoded.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/misterclayt0n/reps/internal/models"
	"github.com/misterclayt0n/reps/internal/weight"
)

var (
	boldGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
	magenta   = color.New(color.FgMagenta).SprintFunc()
	yellow    = color.New(color.FgYellow).SprintFunc()
	red       = color.New(color.FgRed).SprintFunc()
)

func display(v float64, unit weight.Unit) string {
	return fmt.Sprintf("%.2f %s", v, unit.Abbreviation())
}

// Estimate prints the 1RM, the spread across formulas and both plate breakdowns.
func Estimate(w io.Writer, e *models.Estimate) {
	fmt.Fprintf(w, "%s %s × %d\n", boldGreen("Set:"), display(e.Weight, e.Unit), e.Reps)
	fmt.Fprintf(w, "  %s: %s (%s)\n", boldCyan("1RM"), display(e.OneRM, e.Unit), yellow(e.Formula))
	fmt.Fprintf(w, "  %s: %s (%s) / %s (%s)\n",
		boldCyan("Range"),
		display(e.Min.Value, e.Unit), e.Min.Formula,
		display(e.Max.Value, e.Unit), e.Max.Formula)

	if len(e.Formulas) > 1 {
		fmt.Fprintln(w, "  "+boldCyan("All formulas:"))
		for _, f := range e.Formulas {
			fmt.Fprintf(w, "    %-10s %s\n", f.Formula, display(f.Value, e.Unit))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s\n", boldGreen("Plates for"), display(e.Weight, e.Unit))
	Breakdown(w, e.PlatesForWeight, e.Unit)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s\n", boldGreen("Plates for 1RM"), display(e.OneRM, e.Unit))
	Breakdown(w, e.PlatesForOneRM, e.Unit)

	// The range collapses to the chosen formula when no spread is available.
	if e.Min == e.Max {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s (%s)\n", boldGreen("Plates for min 1RM"), display(e.Min.Value, e.Unit), e.Min.Formula)
	Breakdown(w, e.PlatesForMin, e.Unit)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s (%s)\n", boldGreen("Plates for max 1RM"), display(e.Max.Value, e.Unit), e.Max.Formula)
	Breakdown(w, e.PlatesForMax, e.Unit)
}

// Breakdown prints the per-side plates and the weight actually loaded.
func Breakdown(w io.Writer, b models.Breakdown, unit weight.Unit) {
	if b.BelowBar {
		fmt.Fprintf(w, "  %s\n", red(fmt.Sprintf("Below the %s bar, nothing to load", display(b.Bar, unit))))
		return
	}
	if len(b.Plates) == 0 {
		fmt.Fprintf(w, "  %s\n", magenta("Bar only"))
	}
	for _, p := range b.Plates {
		fmt.Fprintf(w, "  %dx %s on each side\n", p.Quantity, display(p.Weight, p.Unit))
	}
	fmt.Fprintf(w, "  %s: %s\n", boldCyan("Actual weight"), display(b.Loaded, unit))
}

// Table prints one line per rep count with every formula and the best pick.
func Table(w io.Writer, t models.RepTable) {
	if len(t.Rows) == 0 {
		fmt.Fprintln(w, magenta("No rows."))
		return
	}

	fmt.Fprintf(w, "%s %s\n", boldGreen("1RM table for"), display(t.Weight, t.Unit))

	header := []string{fmt.Sprintf("%-4s", "Reps")}
	for _, f := range t.Rows[0].Formulas {
		header = append(header, fmt.Sprintf("%-14s", f.Formula))
	}
	header = append(header, "Best")
	line := strings.Join(header, " | ")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+line)
	fmt.Fprintln(w, "  "+strings.Repeat("─", len(line)))

	for _, row := range t.Rows {
		cols := []string{fmt.Sprintf("%-4d", row.Reps)}
		for _, f := range row.Formulas {
			cols = append(cols, fmt.Sprintf("%-14s", display(f.Value, t.Unit)))
		}
		cols = append(cols, yellow(row.Best))
		fmt.Fprintln(w, "  "+strings.Join(cols, " | "))
	}
}

// Conversion prints "x = y".
func Conversion(w io.Writer, c models.Conversion) {
	fmt.Fprintf(w, "%s = %s\n", display(c.From, c.FromUnit), boldGreen(display(c.To, c.ToUnit)))
}
