// Package month handles the "YYYY-MM" keys used by the rent roll and
// the remote rent API. Keys sort lexically in chronological order.
package month

import (
	"fmt"
	"time"
)

const layout = "2006-01"

// Format returns the month key for a point in time, e.g. "2025-09".
func Format(t time.Time) string {
	return t.Format(layout)
}

// Current returns the key for the current calendar month.
func Current() string {
	return Format(time.Now())
}

// Parse parses a "YYYY-MM" key.
func Parse(key string) (time.Time, error) {
	t, err := time.Parse(layout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", key, err)
	}
	return t, nil
}

// Add returns the key n months after key (n may be negative).
func Add(key string, n int) (string, error) {
	t, err := Parse(key)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, n, 0)), nil
}

// Display returns a human month label, e.g. "September 2025".
func Display(key string) string {
	t, err := Parse(key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}
