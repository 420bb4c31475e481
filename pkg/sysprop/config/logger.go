package config

import "sysprop.dev/pkg/sysprop/logging"

// NewLogger returns a logger at the level named by LOG_LEVEL, INFO when unset or unknown.
func NewLogger(c Config) logging.Logger {
	return logging.NewLogger(logging.GetLevelFromString(c.GetOrDefault("LOG_LEVEL", "INFO")))
}
