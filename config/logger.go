package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. Development mode, or Debug, uses
// zap's development preset; every other mode uses the production preset.
// Logger.Level and Logger.Encoding override the preset.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Router.Mode == "development" || cfg.Router.Debug {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	if cfg.Logger.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Logger.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	if cfg.Logger.Encoding != "" {
		zc.Encoding = cfg.Logger.Encoding
	}

	return zc.Build()
}
