package reminder

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

// ParseDayFilter parses a strict YYYY-MM-DD calendar date and returns the
// start of that day in UTC. A day filter selects scheduled times within
// [start, start+24h).
func ParseDayFilter(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrDayFilterMalformed
	}
	day := carbon.ParseByFormat(raw, "Y-m-d", "UTC")
	if day.Error != nil {
		return time.Time{}, ErrDayFilterMalformed
	}
	return day.StartOfDay().Carbon2Time(), nil
}
