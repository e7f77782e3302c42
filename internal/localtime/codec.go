// Package localtime owns parsing and formatting of the app's timezone-naive
// date-time strings. Every other component must go through the codec; parsing
// the raw strings anywhere else reintroduces the UTC-offset bugs this package
// exists to prevent.
package localtime

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	// Layout is the fixed wire format shared with the activity store.
	Layout = "2006-01-02T15:04:05"

	// DateLayout is the date-only form used by repeat end dates.
	DateLayout = "2006-01-02"
)

// Codec parses and formats local date-time strings in a fixed location.
// The components are always interpreted as wall-clock values in that
// location, never as a UTC instant.
type Codec struct {
	loc *time.Location
}

// NewCodec returns a codec bound to loc. A nil loc means the process-local
// timezone.
func NewCodec(loc *time.Location) *Codec {
	if loc == nil {
		loc = time.Local
	}
	return &Codec{loc: loc}
}

// Location returns the codec's location.
func (c *Codec) Location() *time.Location {
	return c.loc
}

// Parse interprets s as wall-clock time in the codec's location. Strings
// that do not match the fixed format fall back to a lenient parse with a
// logged warning; the fallback is a salvage path, not a contract.
func (c *Codec) Parse(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(Layout, s, c.loc); err == nil {
		return t, nil
	}

	t, err := c.parseFallback(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse local date-time %q: %w", s, err)
	}

	slog.Warn("local date-time did not match fixed format, fallback parse used",
		slog.String("value", s),
		slog.Time("parsed", t),
	)
	return t, nil
}

// ParseDate interprets s as a local calendar date at midnight.
func (c *Codec) ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, c.loc); err == nil {
		return t, nil
	}

	// End dates sometimes arrive with a time component attached.
	t, err := c.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse local date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc), nil
}

// Format renders t's wall-clock fields in the fixed format. Month, day,
// hour, minute and second are always zero-padded.
func (c *Codec) Format(t time.Time) string {
	return t.Format(Layout)
}

// FormatDate renders t's calendar date in the date-only form.
func (c *Codec) FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func (c *Codec) parseFallback(s string) (time.Time, error) {
	candidates := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		DateLayout,
	}

	normalized := strings.TrimSpace(s)
	for _, layout := range candidates {
		if t, err := time.ParseInLocation(layout, normalized, c.loc); err == nil {
			return t, nil
		}
	}

	// Last resort: RFC3339 input from an older client. The offset is
	// honored, then the instant is rendered into the codec's location.
	t, err := time.Parse(time.RFC3339, normalized)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(c.loc), nil
}
