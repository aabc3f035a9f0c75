package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"ev-charging-dashboard/internal/app"
	"ev-charging-dashboard/internal/config"
	"ev-charging-dashboard/internal/logger"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("EVDASH_CONFIG"), "Path to YAML or JSON config (optional)")
	dataPath := flag.String("data", "", "Sessions CSV path (overrides config)")
	flag.Parse()

	log := logger.New("main")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Errorf("load config: %v", err)
		os.Exit(1)
	}
	if *dataPath != "" {
		cfg.Data.Path = *dataPath
	}

	svc, err := app.New(cfg)
	if err != nil {
		log.Errorf("startup: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := svc.Run(ctx); err != nil {
		log.Errorf("server: %v", err)
		os.Exit(1)
	}
}
