package env

import (
	"os"
	"strconv"

	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
)

// Get returns the named variable or the fallback, logging when the fallback
// is used so misconfigured deployments are visible at startup.
func Get(key, fallback string, log *logger.Logger) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	if log != nil {
		log.Debug("Environment variable not set, using fallback", "key", key, "fallback", fallback)
	}
	return fallback
}

func GetAsInt(key string, fallback int, log *logger.Logger) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		if log != nil {
			log.Debug("Environment variable not set, using fallback", "key", key, "fallback", fallback)
		}
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		if log != nil {
			log.Warn("Environment variable is not an integer, using fallback", "key", key, "value", raw, "fallback", fallback)
		}
		return fallback
	}
	return value
}
