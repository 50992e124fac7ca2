package util

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ParseAmountCent parses a user-formatted amount string ("12000",
// "12,000", "$ 12000.50") into cents. Thousands separators and a leading
// currency marker are tolerated; anything left that is not a number is an
// error.
func ParseAmountCent(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// FormatCOP renders cents as a Colombian peso display string.
func FormatCOP(cents int64) string {
	return money.New(cents, "COP").Display()
}
