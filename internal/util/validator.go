package util

import (
	"fmt"
	"time"
)

// ParseDate parses a user-provided date, accepting the same layouts the
// frontend sends. Empty input yields the zero time and no error; callers
// decide the default.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
}
