package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/reps/internal/weight"
)

const validTOML = `
[defaults]
unit = "kg"
formula = "brzycki"
reps = 8

[log]
level = "debug"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigValid(t *testing.T) {
	cfg, err := LoadConfig(writeTemp(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, weight.Kilograms, cfg.Defaults.Unit)
	assert.Equal(t, "brzycki", cfg.Defaults.Formula)
	assert.Equal(t, 8, cfg.Defaults.Reps)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeTemp(t, "[defaults]\nunit = \"kilograms\"\n"))
	require.NoError(t, err)

	assert.Equal(t, weight.Kilograms, cfg.Defaults.Unit)
	assert.Equal(t, "best", cfg.Defaults.Formula)
	assert.Equal(t, 5, cfg.Defaults.Reps)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("REPS_UNIT", "lbs")
	t.Setenv("REPS_FORMULA", "kelley")
	t.Setenv("REPS_REPS", "12")
	t.Setenv("REPS_LOG_LEVEL", "error")

	cfg, err := LoadConfig(writeTemp(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, weight.Pounds, cfg.Defaults.Unit)
	assert.Equal(t, "kelley", cfg.Defaults.Formula)
	assert.Equal(t, 12, cfg.Defaults.Reps)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfigIgnoresCase(t *testing.T) {
	cfg, err := LoadConfig(writeTemp(t, "[defaults]\nunit = \"KG\"\nformula = \" Best \"\n"))
	require.NoError(t, err)
	assert.Equal(t, weight.Kilograms, cfg.Defaults.Unit)
	assert.Equal(t, "best", cfg.Defaults.Formula)

	t.Setenv("REPS_UNIT", "LBS")
	t.Setenv("REPS_FORMULA", "BEST")
	cfg, err = LoadConfig(writeTemp(t, validTOML))
	require.NoError(t, err)
	assert.Equal(t, weight.Pounds, cfg.Defaults.Unit)
	assert.Equal(t, "best", cfg.Defaults.Formula)

	t.Setenv("REPS_FORMULA", "McGlothin")
	cfg, err = LoadConfig(writeTemp(t, validTOML))
	require.NoError(t, err)
	assert.Equal(t, "mcglothin", cfg.Defaults.Formula)
}

func TestLoadConfigBadEnvUnit(t *testing.T) {
	t.Setenv("REPS_UNIT", "stone")
	_, err := LoadConfig(writeTemp(t, validTOML))
	assert.ErrorIs(t, err, weight.ErrUnknownUnit)
}

func TestLoadConfigMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"bad unit":    "[defaults]\nunit = \"stone\"\n",
		"bad formula": "[defaults]\nformula = \"lombardi\"\n",
		"bad reps":    "[defaults]\nreps = 0\n",
		"bad level":   "[log]\nlevel = \"loud\"\n",
		"bad toml":    "[defaults\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeTemp(t, content))
			assert.Error(t, err)
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "reps", "config.toml"), path)
}
