package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/reps/internal/models"
	"github.com/misterclayt0n/reps/internal/onerm"
	"github.com/misterclayt0n/reps/internal/weight"
)

// resetFlags puts every flag back to its default so tests don't leak into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithEnv(t, nil, args...)
}

func runWithEnv(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"REPS_UNIT", "REPS_FORMULA", "REPS_REPS", "REPS_LOG_LEVEL"} {
		t.Setenv(k, env[k])
	}

	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCalcText(t *testing.T) {
	out, err := run(t, "calc", "-w", "225", "-r", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "1RM: 262.46 lbs (Epley)")
	assert.Contains(t, out, "2x 45.00 lbs on each side")
	assert.Contains(t, out, "Actual weight: 225.00 lbs")
	assert.Contains(t, out, "Actual weight: 260.00 lbs")
	assert.Contains(t, out, "Plates for min 1RM")
	assert.Contains(t, out, "Actual weight: 250.00 lbs")
}

func TestCalcJSON(t *testing.T) {
	out, err := run(t, "calc", "-w", "100kg", "-r", "10", "-f", "mcglothin", "-o", "json")
	require.NoError(t, err)

	var est models.Estimate
	require.NoError(t, json.Unmarshal([]byte(out), &est))
	assert.Equal(t, onerm.McGlothin, est.Formula)
	assert.Equal(t, weight.Kilograms, est.Unit)
	assert.InDelta(t, 125, est.OneRM, 1e-9)
	assert.Contains(t, out, `"formula": "mcglothin"`)
	assert.Contains(t, out, `"unit": "kg"`)
}

func TestCalcFormulaFromEnvIgnoresCase(t *testing.T) {
	out, err := runWithEnv(t, map[string]string{"REPS_FORMULA": "BEST", "REPS_UNIT": "KG"},
		"calc", "-w", "100", "-r", "10", "-o", "json")
	require.NoError(t, err)

	var est models.Estimate
	require.NoError(t, json.Unmarshal([]byte(out), &est))
	assert.Equal(t, onerm.Brzycki, est.Formula)
	assert.Equal(t, weight.Kilograms, est.Unit)
}

func TestCalcUsesConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[defaults]\nunit = \"kg\"\nformula = \"kelley\"\nreps = 10\n"), 0644))

	out, err := run(t, "--config", path, "calc", "-w", "100", "-o", "json")
	require.NoError(t, err)

	var est models.Estimate
	require.NoError(t, json.Unmarshal([]byte(out), &est))
	assert.Equal(t, weight.Kilograms, est.Unit)
	assert.Equal(t, onerm.Kelley, est.Formula)
	assert.Equal(t, 10, est.Reps)
}

func TestCalcClampsReps(t *testing.T) {
	out, err := run(t, "calc", "-w", "100", "-r", "0", "-o", "json")
	require.NoError(t, err)

	var est models.Estimate
	require.NoError(t, json.Unmarshal([]byte(out), &est))
	assert.Equal(t, 1, est.Reps)
}

func TestCalcErrors(t *testing.T) {
	cases := map[string][]string{
		"missing weight":  {"calc", "-r", "5"},
		"bad weight":      {"calc", "-w", "heavy"},
		"negative weight": {"calc", "-w", "-10"},
		"bad unit":        {"calc", "-w", "100", "-u", "stone"},
		"bad formula":     {"calc", "-w", "100", "-f", "lombardi"},
		"bad output":      {"calc", "-w", "100", "-o", "xml"},
		"brzycki at 37":   {"calc", "-w", "100", "-r", "37", "-f", "brzycki"},
		"too heavy":       {"calc", "-w", "100000000000000000000", "-r", "5"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestPlates(t *testing.T) {
	out, err := run(t, "plates", "225")
	require.NoError(t, err)
	assert.Contains(t, out, "To get close to but not over 225.00 lbs")
	assert.Contains(t, out, "2x 45.00 lbs on each side")

	out, err = run(t, "plates", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "Below the 45.00 lbs bar")

	out, err = run(t, "plates", "142.5", "-u", "kg", "-o", "json")
	require.NoError(t, err)

	var b models.Breakdown
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	assert.Equal(t, 142.5, b.Loaded)
	assert.Len(t, b.Plates, 3)
	assert.Equal(t, weight.Kilograms, b.Plates[0].Unit)

	_, err = run(t, "plates", "100000000000000000000")
	assert.ErrorIs(t, err, weight.ErrTooHeavy)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "225lbs")
	require.NoError(t, err)
	assert.Equal(t, "225.00 lbs = 102.06 kg\n", out)

	out, err = run(t, "convert", "100", "-u", "kg")
	require.NoError(t, err)
	assert.Equal(t, "100.00 kg = 220.46 lbs\n", out)

	out, err = run(t, "convert", "100kg", "--to", "kg")
	require.NoError(t, err)
	assert.Equal(t, "100.00 kg = 100.00 kg\n", out)

	_, err = run(t, "convert", "100", "--to", "stone")
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	out, err := run(t, "table", "-w", "225", "-m", "16")
	require.NoError(t, err)
	assert.Contains(t, out, "1RM table for 225.00 lbs")
	assert.Contains(t, out, "McGlothin")

	out, err = run(t, "table", "-w", "100kg", "-m", "3", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "unit: kg")
	assert.Contains(t, out, "reps: 3")
}

func TestInteractiveNeedsTerminal(t *testing.T) {
	_, err := run(t, "interactive")
	assert.ErrorContains(t, err, "needs a terminal")
}
