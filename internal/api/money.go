package api

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// parseAmount converts a decimal string with up to 2 fractional digits
// into minor units.
func parseAmount(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("amount required")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %w", err)
	}

	minor := d.Shift(2)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("amount supports up to 2 decimals")
	}

	if !minor.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount out of range")
	}

	return minor.IntPart(), nil
}

// formatAmount renders minor units as a decimal string with 2 digits.
func formatAmount(minor int64) string {
	return decimal.NewFromInt(minor).Shift(-2).StringFixed(2)
}
