package logger

import (
	"go.uber.org/zap"
)

// NewLogger - build the process logger. "production" gets the sampled JSON
// config, anything else the human readable development config.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
