package reconcile

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampFormat documents the wire format: year-month-day hour:minute:second:millisecond and
// a numeric zone offset, e.g. "2024-03-01 10:15:30:250+0530".
const TimestampFormat = "yyyy-MM-dd HH:mm:ss:SSSZ"

// nullToken is the literal some clients send instead of omitting a timestamp.
const nullToken = "null"

// Go cannot express a colon before the millisecond field, so the digits are cut out and added
// back as a duration.
const (
	parseLayout     = "2006-01-02 15:04:05-0700"
	parseLayoutISO  = "2006-01-02 15:04:05Z07:00"
	formatDateTime  = "2006-01-02 15:04:05"
	formatZone      = "-0700"
	millisStart     = 19
	maxMillisDigits = 3
)

// ParseTimestamp parses text in TimestampFormat. The millisecond field is a count of one to three
// digits, so ":5" is 5ms.
// Empty input and the literal "null" yield (nil, nil); malformed input yields (nil, err).
func ParseTimestamp(text string) (*time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, nullToken) {
		return nil, nil
	}

	rest, millis, err := splitMillis(text)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: expected %s: %w", text, TimestampFormat, err)
	}

	t, err := time.Parse(parseLayout, rest)
	if err != nil {
		var isoErr error
		if t, isoErr = time.Parse(parseLayoutISO, rest); isoErr != nil {
			return nil, fmt.Errorf("invalid timestamp %q: expected %s: %w", text, TimestampFormat, err)
		}
	}
	t = t.Add(millis).UTC()
	return &t, nil
}

// splitMillis removes the ":SSS" field that follows the seconds and returns it as a duration.
// Text without the field is returned unchanged.
func splitMillis(text string) (string, time.Duration, error) {
	if len(text) <= millisStart || text[millisStart] != ':' {
		return text, 0, nil
	}
	end := millisStart + 1
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	digits := text[millisStart+1 : end]
	if len(digits) == 0 || len(digits) > maxMillisDigits {
		return "", 0, fmt.Errorf("millisecond field %q must have 1 to %d digits", digits, maxMillisDigits)
	}
	ms, err := strconv.Atoi(digits)
	if err != nil {
		return "", 0, err
	}
	return text[:millisStart] + text[end:], time.Duration(ms) * time.Millisecond, nil
}

// FormatTimestamp renders t in TimestampFormat, in UTC.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s:%03d%s", t.Format(formatDateTime), t.Nanosecond()/int(time.Millisecond), t.Format(formatZone))
}

// ResolveLater returns the later of existing and incoming.
// If only one is set it wins; if neither is set, now is returned.
func ResolveLater(existing, incoming *time.Time, now time.Time) time.Time {
	switch {
	case existing == nil && incoming == nil:
		return now
	case existing == nil:
		return *incoming
	case incoming == nil:
		return *existing
	case incoming.After(*existing):
		return *incoming
	default:
		return *existing
	}
}
