package main

import (
	"fmt"

	"github.com/HVLhenrik/russian-tutor/internal/config"
	"github.com/HVLhenrik/russian-tutor/internal/progress"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openLedger(cfg *config.Config) (*progress.Ledger, error) {
	ledger, err := progress.NewLedger(progress.NewFileStore(cfg.Progress.FilePath))
	if err != nil {
		return nil, fmt.Errorf("progress.NewLedger() > %w", err)
	}
	return ledger, nil
}
