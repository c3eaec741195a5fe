// Package core provides money parsing and handling utilities.
//
// This file contains the income formula and the parsing of user supplied
// rates. Amounts are decimal.Decimal so that sums never drift.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places kept for currency amounts.
const MoneyPlaces = 2

var sixty = decimal.NewFromInt(60)

// ComputeIncome returns durationMinutes/60 × hourlyRate rounded to two places.
//
// The product is formed before the division so that rates like 25.00 for
// 50 minutes do not lose precision. Rounding is half away from zero.
//
// Examples:
//   ComputeIncome(90, 20)    -> 30.00
//   ComputeIncome(50, 25)    -> 20.83
//   ComputeIncome(45, 33.33) -> 25.00 (24.9975 rounds up)
func ComputeIncome(durationMinutes int, hourlyRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(durationMinutes)).
		Mul(hourlyRate).
		Div(sixty).
		Round(MoneyPlaces)
}

// ParseAmount parses a positive currency amount such as "20", "20.5" or "20,50".
//
// It accepts both dot and comma decimal separators. Negative, zero and
// malformed values return ErrInvalidRate.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidRate
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return decimal.Zero, ErrInvalidRate
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidRate
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidRate
	}
	return d, nil
}

// FormatMoney renders an amount with exactly two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}

func minutesToHours(minutes int64) decimal.Decimal {
	return decimal.NewFromInt(minutes).Div(sixty)
}
