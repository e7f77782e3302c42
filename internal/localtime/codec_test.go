package localtime

import (
	"testing"
	"time"
)

func TestCodecParseWallClock(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	const input = "2026-03-15T08:30:00"

	tests := []struct {
		name string
		loc  *time.Location
	}{
		{name: "tokyo", loc: tokyo},
		{name: "new_york", loc: newYork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := NewCodec(tt.loc)

			got, err := codec.Parse(input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if got.Year() != 2026 || got.Month() != time.March || got.Day() != 15 {
				t.Errorf("Parse() date = %v, want 2026-03-15", got)
			}
			if got.Hour() != 8 || got.Minute() != 30 || got.Second() != 0 {
				t.Errorf("Parse() clock = %02d:%02d:%02d, want 08:30:00", got.Hour(), got.Minute(), got.Second())
			}
			if got.Location() != tt.loc {
				t.Errorf("Parse() location = %v, want %v", got.Location(), tt.loc)
			}
		})
	}
}

func TestCodecParseDifferentLocationsDifferentInstants(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	const input = "2026-03-15T08:30:00"

	a, err := NewCodec(tokyo).Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	b, err := NewCodec(newYork).Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if a.Equal(b) {
		t.Errorf("same wall clock in different zones resolved to the same instant: %v", a)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec(time.UTC)

	inputs := []string{
		"2026-01-05T00:00:00",
		"2026-02-28T23:59:59",
		"2026-12-31T09:05:03",
	}

	for _, in := range inputs {
		parsed, err := codec.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", in, err)
		}
		if got := codec.Format(parsed); got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}

func TestCodecFormatZeroPads(t *testing.T) {
	codec := NewCodec(time.UTC)

	in := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	want := "2026-01-02T03:04:05"
	if got := codec.Format(in); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestCodecParseFallback(t *testing.T) {
	codec := NewCodec(time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "space separator",
			input: "2026-03-15 08:30:00",
			want:  time.Date(2026, time.March, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "missing seconds",
			input: "2026-03-15T08:30",
			want:  time.Date(2026, time.March, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2026-03-15",
			want:  time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset",
			input: "2026-03-15T08:30:00+09:00",
			want:  time.Date(2026, time.March, 14, 23, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCodecParseInvalid(t *testing.T) {
	codec := NewCodec(time.UTC)

	for _, in := range []string{"", "not-a-date", "2026-13-40T99:99:99"} {
		if _, err := codec.Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error", in)
		}
	}
}

func TestCodecParseDate(t *testing.T) {
	codec := NewCodec(time.UTC)

	got, err := codec.ParseDate("2026-06-30")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	want := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}

	// A trailing time component is truncated to midnight.
	got, err = codec.ParseDate("2026-06-30T18:45:00")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("ParseDate() with time = %v, want %v", got, want)
	}
}
