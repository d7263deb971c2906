package reminder

import (
	"strings"
	"time"
)

const scheduledTimeLayout = "2006-01-02T15:04:05"

// ParseScheduledTime normalizes a client-supplied datetime string to a
// canonical UTC instant. Three shapes are accepted: a trailing 'Z' (UTC),
// an explicit ±HH:MM offset (converted to UTC), or no timezone signal at
// all (assumed UTC). The 'Z' suffix is checked first and takes precedence
// over any other signal in the string.
func ParseScheduledTime(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)

	if strings.HasSuffix(value, "Z") {
		t, err := time.Parse(scheduledTimeLayout, strings.TrimSuffix(value, "Z"))
		if err != nil {
			return time.Time{}, ErrScheduledTimeMalformed
		}
		return t, nil
	}

	if t, err := time.Parse(scheduledTimeLayout+"-07:00", value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(scheduledTimeLayout, value)
	if err != nil {
		return time.Time{}, ErrScheduledTimeMalformed
	}
	return t, nil
}
