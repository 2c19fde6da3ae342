package main

import (
	"log/slog"

	"sagelink/internal/config"
	"sagelink/internal/logging"
)

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logging.NewFromConfig(cfg)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
