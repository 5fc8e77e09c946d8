package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/reps/internal/config"
	"github.com/misterclayt0n/reps/internal/logging"
	"github.com/misterclayt0n/reps/internal/weight"
)

var (
	configPath string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "reps",
	Short:         "One-rep max and barbell plate calculator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Log.Level
		if logLevel != "" {
			level = logLevel
		}
		logger := logging.New(level, cmd.ErrOrStderr())
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

		logger.Debug().Str("command", cmd.Name()).Stringer("unit", cfg.Defaults.Unit).Msg("config loaded")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// resolveUnit parses a --unit flag, falling back to the configured default.
func resolveUnit(flag string) (weight.Unit, error) {
	if flag == "" {
		return cfg.Defaults.Unit, nil
	}
	u, err := weight.ParseUnit(flag)
	if err != nil {
		return 0, fmt.Errorf("invalid --unit: %w", err)
	}
	return u, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/reps/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
