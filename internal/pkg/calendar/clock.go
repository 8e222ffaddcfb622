package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a minute-of-day value (0..1439) parsed from an "HH:MM" string.
// Schedule rules keep their times as strings in the database; a value that
// does not parse is simply treated as unset rather than failing the day.
type Clock int

// ParseClock parses "HH:MM" (also tolerating "HH:MM:SS"). The boolean is
// false when the value is missing or malformed.
func ParseClock(s string) (Clock, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return Clock(h*60 + m), true
}

// ClockOf extracts the minute-of-day of t in the given location.
func ClockOf(t time.Time, loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return Clock(local.Hour()*60 + local.Minute())
}

// Minutes returns the clock value as minutes since midnight.
func (c Clock) Minutes() int {
	return int(c)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
