package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hance08/fintrack/internal/model"
)

// FormatAmount renders an amount with two decimals, as shown in tables and totals.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatAmountWithCurrency appends the currency label when one is configured.
func FormatAmountWithCurrency(amount float64, currency string) string {
	if currency == "" {
		return FormatAmount(amount)
	}
	return fmt.Sprintf("%s %s", FormatAmount(amount), currency)
}

// FormatStored renders an amount the way it is written to the ledger file:
// shortest representation that parses back to the same float.
func FormatStored(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// ParseAmount parses user or file supplied amount text.
// e.g., "150" -> 150, "150.50" -> 150.5, "-3" -> -3
// NaN and infinities are rejected so they cannot poison totals.
func ParseAmount(amountStr string) (float64, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return 0, fmt.Errorf("%w: amount is required", model.ErrInvalidAmount)
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidAmount, amountStr)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", model.ErrInvalidAmount, amountStr)
	}

	return amount, nil
}
