package util

import "testing"

func TestParseDate_Valid(t *testing.T) {
	cases := []string{
		"2024-01-01",
		"2024-12-31T15:04:05",
		"2025-06-15T10:00:00Z",
	}

	for _, in := range cases {
		got, err := ParseDate(in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", in, err)
		}
		if got.IsZero() {
			t.Errorf("ParseDate(%q) = zero time", in)
		}
	}
}

func TestParseDate_EmptyIsZero(t *testing.T) {
	got, err := ParseDate("")
	if err != nil {
		t.Fatalf("ParseDate(\"\") error = %v, want nil", err)
	}
	if !got.IsZero() {
		t.Errorf("ParseDate(\"\") = %v, want zero time", got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{
		"2024/01/01",
		"01-01-2024",
		"not-a-date",
		"2024-13-01",
	}

	for _, in := range cases {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", in)
		}
	}
}
