package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger. Anything but "production" gets the
// human-readable development configuration.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}

	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true

	return config.Build()
}
