package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ExpiryDate returns the card validity date for a registration created
// at the given time: one year on, formatted DD/MM/YYYY.
func ExpiryDate(createdAt time.Time) string {
	return createdAt.AddDate(1, 0, 0).Format("02/01/2006")
}

// ParseDuration parses a duration string, returns the default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
