package helpers

import (
	"strings"
	"time"

	"github.com/yigit/devacademy/internal/pkg/logger"
)

// ParseDuration parses a duration string such as "1h" or "30m".
// An empty or malformed value yields fallback.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		logger.Warn().Err(err).Str("value", value).Dur("fallback", fallback).Msg("Invalid duration, using fallback")
		return fallback
	}
	return duration
}
