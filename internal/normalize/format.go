package normalize

import (
	"fmt"
	"time"

	"github.com/gyeh/datenorm/internal/native"
)

// IsValid reports whether ts holds an instant.
func IsValid(ts Timestamp) bool { return ts.IsValid() }

// FormatDateOnly renders ts as YYYY-MM-DD from its UTC fields.
func FormatDateOnly(ts Timestamp) string { return ts.FormatDateOnly() }

// FormatDateTime renders ts as "YYYY-MM-DD HH:MM:SS" with the date taken in
// UTC and the clock taken in the local zone.
func FormatDateTime(ts Timestamp) string { return ts.FormatDateTime() }

// FormatDateOnly renders ts as YYYY-MM-DD from its UTC fields, or "" when
// ts is invalid.
func (ts Timestamp) FormatDateOnly() string {
	if !ts.valid {
		return ""
	}
	t := native.Fields(ts.ms, time.UTC)
	return fmt.Sprintf("%d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// FormatDateTime is FormatDateTimeIn(time.Local).
func (ts Timestamp) FormatDateTime() string {
	return ts.FormatDateTimeIn(time.Local)
}

// FormatDateTimeIn pairs the UTC date with the clock reading in loc.
// A "YYYY-MM-DD HH:MM:SS" string parsed in loc formats back to itself only
// while its UTC date matches its local date.
func (ts Timestamp) FormatDateTimeIn(loc *time.Location) string {
	if !ts.valid {
		return ""
	}
	t := native.Fields(ts.ms, loc)
	return fmt.Sprintf("%s %02d:%02d:%02d", ts.FormatDateOnly(), t.Hour(), t.Minute(), t.Second())
}

// FormatDateTime renders ts using the normalizer's location for the clock.
func (n Normalizer) FormatDateTime(ts Timestamp) string {
	return ts.FormatDateTimeIn(n.location())
}
