package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// DescribeSpan renders a calendar span as a display string ("3 months",
// "2 weeks", "10 days"). An inverted range yields "invalid" rather than an
// error; the record is still stored.
func DescribeSpan(start, end time.Time) string {
	days := int(end.Sub(start).Hours() / 24)
	switch {
	case days < 0:
		return "invalid"
	case days >= 60:
		return fmt.Sprintf("%d months", days/30)
	case days >= 30:
		return "1 month"
	case days >= 14:
		return fmt.Sprintf("%d weeks", days/7)
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}
