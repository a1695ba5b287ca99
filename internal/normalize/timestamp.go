package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gyeh/datenorm/internal/native"
)

// Timestamp is an instant held as milliseconds since the Unix epoch.
// The zero value is the invalid timestamp.
type Timestamp struct {
	ms    int64
	valid bool
}

// Invalid is the sentinel returned for strings that do not name a date.
var Invalid = Timestamp{}

// FromMillis returns the timestamp for ms, or Invalid if ms is out of range.
func FromMillis(ms int64) Timestamp {
	if ms > native.MaxMillis || ms < -native.MaxMillis {
		return Invalid
	}
	return Timestamp{ms: ms, valid: true}
}

// FromTime truncates t to millisecond precision.
func FromTime(t time.Time) Timestamp {
	ms, ok := native.InRange(t)
	if !ok {
		return Invalid
	}
	return Timestamp{ms: ms, valid: true}
}

func fromNative(ms int64, ok bool) Timestamp {
	if !ok {
		return Invalid
	}
	return Timestamp{ms: ms, valid: true}
}

// IsValid reports whether ts holds an instant.
func (ts Timestamp) IsValid() bool { return ts.valid }

// UnixMilli returns the held milliseconds. ok is false for Invalid.
func (ts Timestamp) UnixMilli() (ms int64, ok bool) {
	return ts.ms, ts.valid
}

// Time returns ts as a UTC time.Time; the zero time for Invalid.
func (ts Timestamp) Time() time.Time {
	if !ts.valid {
		return time.Time{}
	}
	return time.UnixMilli(ts.ms).UTC()
}

// SetTime replaces the held instant with ms, or marks ts invalid when ms is
// out of range.
func (ts *Timestamp) SetTime(ms int64) {
	*ts = FromMillis(ms)
}

// Equal reports whether both timestamps are valid and hold the same instant.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.valid && other.valid && ts.ms == other.ms
}

func (ts Timestamp) String() string {
	if !ts.valid {
		return "Invalid Date"
	}
	return ts.Time().Format("2006-01-02T15:04:05.000Z07:00")
}

// MarshalJSON encodes ts as integer milliseconds, or null when invalid.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, ts.ms, 10), nil
}

// UnmarshalJSON accepts null, integer milliseconds, or a date string.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*ts = Invalid
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode timestamp string: %w", err)
		}
		*ts = Parse(s)
		return nil
	}
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("decode timestamp millis: %w", err)
	}
	*ts = FromMillis(ms)
	return nil
}
