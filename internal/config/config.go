package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/misterclayt0n/reps/internal/models"
	"github.com/misterclayt0n/reps/internal/onerm"
	"github.com/misterclayt0n/reps/internal/weight"
)

type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Log      LogConfig      `toml:"log"`
}

// DefaultsConfig holds the values used when a flag is not given.
type DefaultsConfig struct {
	Unit    weight.Unit `toml:"unit" validate:"gte=0,lte=1"`
	Formula string      `toml:"formula" validate:"required,formula"`
	Reps    int         `toml:"reps" validate:"gte=1,lte=255"`
}

type LogConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("formula", func(fl validator.FieldLevel) bool {
		name := normalizeFormula(fl.Field().String())
		if name == models.FormulaBest {
			return true
		}
		_, err := onerm.ParseFormula(name)
		return err == nil
	})
	return v
}

func normalizeFormula(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Default is the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Unit:    weight.Pounds,
			Formula: models.FormulaBest,
			Reps:    5,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "reps")
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads path, or the default location when path is empty. A missing file at the
// default location yields Default(). Values from .env and REPS_* variables win over the file.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	cfg.Defaults.Formula = normalizeFormula(cfg.Defaults.Formula)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("REPS_UNIT"); v != "" {
		if err := cfg.Defaults.Unit.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid REPS_UNIT: %w", err)
		}
	}
	if v := os.Getenv("REPS_FORMULA"); v != "" {
		cfg.Defaults.Formula = v
	}
	if v := os.Getenv("REPS_REPS"); v != "" {
		if reps, err := strconv.Atoi(v); err == nil {
			cfg.Defaults.Reps = reps
		}
	}
	if v := os.Getenv("REPS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

func (c *Config) Validate() error {
	return validate.Struct(c)
}
