package opf

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp converts "HH:MM:SS:mmm" into a duration.
func ParseTimestamp(value string) (time.Duration, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 4 {
		return 0, fmt.Errorf("timestamp %q: want HH:MM:SS:mmm", value)
	}
	limits := [4]int{-1, 59, 59, 999}
	units := [4]time.Duration{time.Hour, time.Minute, time.Second, time.Millisecond}
	var total time.Duration
	for i, part := range parts {
		if part == "" {
			return 0, fmt.Errorf("timestamp %q: empty field", value)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("timestamp %q: field %q is not a number", value, part)
		}
		if limits[i] >= 0 && n > limits[i] {
			return 0, fmt.Errorf("timestamp %q: field %q out of range", value, part)
		}
		total += time.Duration(n) * units[i]
	}
	return total, nil
}

// FormatTimestamp renders d as "HH:MM:SS:mmm". Negative durations clamp to zero.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d:%03d", h, m, s, ms)
}
