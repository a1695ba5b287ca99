package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/gyeh/datenorm/internal/native"
)

// Normalizer turns date strings into Timestamps. Plain dates are anchored
// to UTC midnight; space-separated date-times are read in Location; anything
// containing a 'T' goes straight to the native parser.
//
// The zero value uses time.Local and time.Now.
type Normalizer struct {
	Location *time.Location
	Clock    native.Clock
}

// Default is the Normalizer behind the package-level functions.
var Default = Normalizer{}

// Create normalizes an optional string input. A nil input (or nil *string)
// yields the current time; any non-string input is an ArgumentError.
func Create(input any) (Timestamp, error) { return Default.Create(input) }

// Parse normalizes s. Unparseable strings yield Invalid.
func Parse(s string) Timestamp { return Default.Parse(s) }

// Now returns the current time.
func Now() Timestamp { return Default.Now() }

func (n Normalizer) location() *time.Location {
	if n.Location == nil {
		return time.Local
	}
	return n.Location
}

// Now returns the current time from the configured clock.
func (n Normalizer) Now() Timestamp {
	clock := n.Clock
	if clock == nil {
		clock = time.Now
	}
	return FromTime(clock())
}

// Create normalizes an optional string input.
func (n Normalizer) Create(input any) (Timestamp, error) {
	switch v := input.(type) {
	case nil:
		return n.Now(), nil
	case string:
		return n.Parse(v), nil
	case *string:
		if v == nil {
			return n.Now(), nil
		}
		return n.Parse(*v), nil
	default:
		return Invalid, &ArgumentError{Value: input}
	}
}

// Parse normalizes s.
func (n Normalizer) Parse(s string) Timestamp {
	if s == "" {
		return Invalid
	}
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, "T"):
		return n.nativeParse(s)
	case strings.Contains(s, " "):
		return n.parseDateTime(s)
	default:
		return n.parseDate(s)
	}
}

func (n Normalizer) nativeParse(s string) Timestamp {
	return fromNative(native.Parse(s, n.location()))
}

// parseDate handles YYYY-M[M]-D[D], composed at UTC midnight.
func (n Normalizer) parseDate(s string) Timestamp {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return n.nativeParse(s)
	}
	ys, ms, ds := parts[0], parts[1], parts[2]
	if len(ys) != 4 || len(ms) < 1 || len(ms) > 2 || len(ds) < 1 || len(ds) > 2 {
		return n.nativeParse(s)
	}
	year, month, day, ok := dateFields(ys, ms, ds)
	if !ok {
		return n.nativeParse(s)
	}
	return fromNative(native.Compose(time.UTC, year, month, day, 0, 0, 0, 0))
}

// parseDateTime handles "YYYY-MM-DD HH[:MM[:SS[.fff]]]" in the local zone.
func (n Normalizer) parseDateTime(s string) Timestamp {
	datePart, timePart, _ := strings.Cut(s, " ")
	parts := strings.Split(datePart, "-")
	if len(parts) != 3 {
		return n.nativeParse(s)
	}
	year, month, day, ok := dateFields(parts[0], parts[1], parts[2])
	if !ok {
		return n.nativeParse(s)
	}

	var clock [3]int
	var msec int
	for i, p := range strings.SplitN(timePart, ":", 4) {
		if i == len(clock) {
			break
		}
		if i == 2 {
			p, msec, ok = splitFraction(p)
			if !ok {
				return Invalid
			}
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return Invalid
		}
		clock[i] = v
	}
	return fromNative(native.Compose(n.location(), year, month, day, clock[0], clock[1], clock[2], msec))
}

// dateFields parses year, month and day and range-checks month and day.
// Day 31 is accepted for every month; calendar rollover settles the rest.
func dateFields(ys, ms, ds string) (year, month, day int, ok bool) {
	var err error
	if year, err = strconv.Atoi(ys); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(ms); err != nil || month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	if day, err = strconv.Atoi(ds); err != nil || day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// splitFraction separates "SS.fff" into the seconds text and milliseconds.
// The fraction is right-padded with zeros and cut to three digits.
func splitFraction(p string) (string, int, bool) {
	sec, frac, found := strings.Cut(p, ".")
	if !found {
		return sec, 0, true
	}
	for _, r := range frac {
		if r < '0' || r > '9' {
			return sec, 0, false
		}
	}
	msec, _ := strconv.Atoi((frac + "000")[:3])
	return sec, msec, true
}
