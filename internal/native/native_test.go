package native

import (
	"testing"
	"time"
)

func TestParse_ISO(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2022-01-01T00:00:00.000Z", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2022-01-01T00:00:00Z", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2022-01-01T10:30:00+02:00", time.Date(2022, 1, 1, 8, 30, 0, 0, time.UTC)},
		{"2022-01-01T10:30:00.5", time.Date(2022, 1, 1, 10, 30, 0, 500e6, tokyo)},
		{"2022-01-01T10:30", time.Date(2022, 1, 1, 10, 30, 0, 0, tokyo)},
		{"2022-01-01", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{" 2022-01-01 ", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		ms, ok := Parse(tt.in, tokyo)
		if !ok {
			t.Fatalf("%q: expected ok", tt.in)
		}
		if ms != tt.want.UnixMilli() {
			t.Errorf("%q: got %v, want %v", tt.in, time.UnixMilli(ms).UTC(), tt.want.UTC())
		}
	}
}

func TestParse_SubMillisecondTruncates(t *testing.T) {
	ms, ok := Parse("1970-01-01T00:00:00.0019Z", time.UTC)
	if !ok || ms != 1 {
		t.Errorf("got %d, %v", ms, ok)
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, s := range []string{"", "   ", "banana"} {
		if _, ok := Parse(s, time.UTC); ok {
			t.Errorf("%q: expected rejection", s)
		}
	}
}

func TestParse_NilLocationIsLocal(t *testing.T) {
	a, okA := Parse("2022-01-01T10:30:00", nil)
	b, okB := Parse("2022-01-01T10:30:00", time.Local)
	if !okA || !okB || a != b {
		t.Errorf("nil location: %d/%v vs %d/%v", a, okA, b, okB)
	}
}

func TestCompose_Rollover(t *testing.T) {
	tests := []struct {
		fields [7]int
		want   time.Time
	}{
		{[7]int{2022, 1, 1, 0, 0, 0, 0}, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{[7]int{2021, 2, 29, 0, 0, 0, 0}, time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)},
		{[7]int{2022, 13, 1, 0, 0, 0, 0}, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{[7]int{2022, 1, 1, 24, 0, 0, 1500}, time.Date(2022, 1, 2, 0, 0, 1, 500e6, time.UTC)},
		{[7]int{2022, 1, 1, -1, 0, 0, 0}, time.Date(2021, 12, 31, 23, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		f := tt.fields
		ms, ok := Compose(time.UTC, f[0], f[1], f[2], f[3], f[4], f[5], f[6])
		if !ok || ms != tt.want.UnixMilli() {
			t.Errorf("%v: got %v (ok=%v), want %v", f, time.UnixMilli(ms).UTC(), ok, tt.want)
		}
	}
}

func TestCompose_OutOfRange(t *testing.T) {
	if _, ok := Compose(time.UTC, 275761, 1, 1, 0, 0, 0, 0); ok {
		t.Error("year 275761 should be out of range")
	}
	if _, ok := Compose(time.UTC, 2022, 1, 1, 1<<31, 0, 0, 0); ok {
		t.Error("oversized hour should be rejected")
	}
	if _, ok := Compose(time.UTC, 275760, 9, 13, 0, 0, 0, 0); !ok {
		t.Error("the last representable day should be in range")
	}
}

func TestFields(t *testing.T) {
	ms := time.Date(2022, 1, 1, 23, 0, 0, 0, time.UTC).UnixMilli()
	got := Fields(ms, time.FixedZone("UTC+2", 2*60*60))
	if got.Day() != 2 || got.Hour() != 1 {
		t.Errorf("got %v", got)
	}
}
