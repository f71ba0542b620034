package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a time-of-day with minute precision, stored as minutes since
// midnight. The persisted form is the normalized "HH:MM:SS" string, which
// compares chronologically as plain text.
type TimeOfDay int

// ParseTimeOfDay accepts 24-hour "H:MM", "HH:MM" or "HH:MM:SS" strings.
// Seconds, when present, are ignored.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	if len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// String renders the normalized storage form, e.g. "09:00:00".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:00", int(t)/60, int(t)%60)
}

// Format12Hour renders the display form, e.g. "9:00 AM", "12:00 PM".
func (t TimeOfDay) Format12Hour() string {
	hour := int(t) / 60
	minute := int(t) % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// FormatTime12Hour formats a stored time string for display. Malformed values
// pass through unchanged; this must never fail.
func FormatTime12Hour(raw string) string {
	t, err := ParseTimeOfDay(raw)
	if err != nil {
		return raw
	}
	return t.Format12Hour()
}
