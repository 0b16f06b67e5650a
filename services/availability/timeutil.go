package availability

import "fmt"

// MinutesPerDay bounds every minute-of-day value handled by the engine.
const MinutesPerDay = 24 * 60

// ParseTime converts a 24-hour "HH:MM" string to minutes from midnight.
func ParseTime(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return hh*60 + mm, nil
}

// FormatTime converts minutes from midnight back to "HH:MM".
// The value must be in [0, MinutesPerDay); anything else is a caller error.
func FormatTime(minuteOfDay int) (string, error) {
	if minuteOfDay < 0 || minuteOfDay >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, minuteOfDay)
	}
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60), nil
}

// IntervalsOverlap reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Intervals that merely touch at an endpoint do not
// overlap, which is what lets a booking start exactly where a buffered busy
// interval ends.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
