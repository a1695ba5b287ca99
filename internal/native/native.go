// Package native provides the host date primitives the normalizer builds on:
// the wall clock, the permissive string parser, and calendar composition.
package native

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// MaxMillis is the largest absolute millisecond offset from the epoch that
// still represents a date (±100,000,000 days).
const MaxMillis int64 = 8.64e15

// Bounds past which composition cannot land inside MaxMillis and would
// overflow time.Date's normalization.
const (
	maxYear  = 1_000_000
	maxField = 1 << 30
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

// isoLayouts are tried before the fallback parser. Layouts without an offset
// are read in the caller's location; a bare date is read in UTC.
var isoLayouts = []struct {
	layout string
	utc    bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02T15:04Z07:00", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02", true},
	{"2006-01", true},
}

// Parse interprets s the way the host date parser does and returns the
// instant in epoch milliseconds. ok is false when s is not a date.
func Parse(s string, loc *time.Location) (ms int64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, l := range isoLayouts {
		in := loc
		if l.utc {
			in = time.UTC
		}
		if t, err := time.ParseInLocation(l.layout, s, in); err == nil {
			return InRange(t)
		}
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return 0, false
	}
	return InRange(t)
}

// Compose builds an instant from calendar fields in loc. Month is 1-based;
// out-of-range fields roll over into the neighbouring unit.
func Compose(loc *time.Location, year, month, day, hour, min, sec, msec int) (int64, bool) {
	if loc == nil {
		loc = time.Local
	}
	if abs(year) > maxYear {
		return 0, false
	}
	for _, f := range [...]int{month, day, hour, min, sec, msec} {
		if abs(f) > maxField {
			return 0, false
		}
	}
	t := time.Date(year, time.Month(month), day, hour, min, sec, msec*int(time.Millisecond), loc)
	return InRange(t)
}

// InRange converts t to epoch milliseconds, rejecting instants outside the
// representable range.
func InRange(t time.Time) (int64, bool) {
	ms := t.UnixMilli()
	if ms > MaxMillis || ms < -MaxMillis {
		return 0, false
	}
	return ms, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Fields reads the calendar fields of ms back out in loc.
func Fields(ms int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ms).In(loc)
}
