package opf

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("01:02:03:004")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	want := time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
	if FormatTimestamp(got) != "01:02:03:004" {
		t.Fatalf("format mismatch: %q", FormatTimestamp(got))
	}
}

func TestParseTimestampRejectsBadInput(t *testing.T) {
	for _, value := range []string{"", "00:00:00", "00:60:00:000", "00:00:00:1000", "aa:00:00:000", "00::00:000", "-1:00:00:000"} {
		if _, err := ParseTimestamp(value); err == nil {
			t.Errorf("ParseTimestamp(%q) expected error", value)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00:000"},
		{-time.Second, "00:00:00:000"},
		{111 * time.Millisecond, "00:00:00:111"},
		{100 * time.Hour, "100:00:00:000"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.in); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
