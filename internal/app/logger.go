package app

import (
	"github.com/guttosm/slotting-service/config"
	"github.com/guttosm/slotting-service/internal/logger"
)

// InitializeLogger configures the global JSON logger.
func InitializeLogger(cfg config.LoggingConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
