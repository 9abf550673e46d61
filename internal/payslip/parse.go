package payslip

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts free-form numeric input into a money amount.
// Anything unparsable, including empty strings, becomes zero so a stray
// character in a form field never poisons the arithmetic downstream.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseLeaves converts leave-count input into a whole day count.
// Fractional and unparsable values become zero.
func ParseLeaves(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
