// Package logger builds the zap logger of the packinfo command.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// New returns a logger for mode: "dev" is a debug-level console logger,
// "prod" an info-level JSON logger, "none" discards everything.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "dev", "development":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "none", "":
		return zap.NewNop(), nil
	default:
		return nil, fmt.Errorf("logger: unknown mode %q", mode)
	}
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
