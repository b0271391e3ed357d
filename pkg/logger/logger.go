// Package logger provides the zap logger used across the service.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a sugared zap logger. Production mode emits JSON; anything
// else uses the human-readable development encoder.
func New(environment string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(environment) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
