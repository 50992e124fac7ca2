package util

import (
	"strings"
	"testing"
)

func TestParseAmountCent(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"12000", 1200000},
		{"12,000", 1200000},
		{"$ 12000", 1200000},
		{"120.50", 12050},
		{"0.01", 1},
		{"-500", -50000},
	}

	for _, tc := range cases {
		got, err := ParseAmountCent(tc.in)
		if err != nil {
			t.Errorf("ParseAmountCent(%q) error = %v, want nil", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmountCent(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountCent_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "$", "12x"} {
		if _, err := ParseAmountCent(in); err == nil {
			t.Errorf("ParseAmountCent(%q) error = nil, want error", in)
		}
	}
}

func TestFormatCOP(t *testing.T) {
	got := FormatCOP(1200000)
	if got == "" {
		t.Fatal("FormatCOP returned empty string")
	}
	if !strings.Contains(got, "12") {
		t.Errorf("FormatCOP(1200000) = %q, expected the major amount in it", got)
	}
}
