package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/963krob/event-business-ad-optimizer/internal/config"
)

// New builds a zap logger from the logging configuration.
func New(conf config.LoggingConfig) (*zap.Logger, error) {
	level := conf.Level
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := conf.Format
	if format == "" {
		format = "console"
	}

	var zapConf zap.Config
	switch format {
	case "console":
		zapConf = zap.NewDevelopmentConfig()
	case "json":
		zapConf = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConf.Level = zap.NewAtomicLevelAt(zapLevel)

	return zapConf.Build()
}
