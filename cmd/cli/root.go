package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ev-charging-dashboard/internal/app"
	"ev-charging-dashboard/internal/config"
	"ev-charging-dashboard/internal/data"
	"ev-charging-dashboard/internal/logger"
	"ev-charging-dashboard/internal/model"
)

var (
	cfgPath  string
	dataPath string
)

var rootCmd = &cobra.Command{
	Use:           "evdash",
	Short:         "EV charging optimization dashboard",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "sessions CSV path (overrides config)")
}

// loadConfig loads the config and applies the --data override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dataPath != "" {
		cfg.Data.Path = dataPath
	}
	return cfg, nil
}

// loadDataset reads the sessions file for a one-shot command.
func loadDataset() (*model.Dataset, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger.SetLevel(cfg.Logging.Level)
	// stdout carries command output.
	log := logger.NewWithWriter("cli", os.Stderr)
	return app.LoadDataset(data.NewStore(cfg.Data.Path), log)
}
