// Package money converts between user input, stored minor units and display values.
//
// Amounts are stored as int64 minor units (kuruş/cents). Parsing and rounding go
// through shopspring/decimal so "0.1" style inputs never pick up float error.
package money

import (
	"errors"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used whenever a currency code is missing or unsupported.
const DefaultCurrency = "TRY"

// Currency describes a supported currency for display purposes.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
}

// Currencies lists the supported currencies in display order.
var Currencies = []Currency{
	{Code: "TRY", Symbol: "₺", Label: "Turkish Lira (₺)"},
	{Code: "USD", Symbol: "$", Label: "US Dollar ($)"},
	{Code: "EUR", Symbol: "€", Label: "Euro (€)"},
}

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNegative      = errors.New("amount cannot be negative")
)

// NormalizeCurrency upper-cases code and falls back to DefaultCurrency when the
// code is not supported.
func NormalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Currencies {
		if c.Code == code {
			return code
		}
	}
	return DefaultCurrency
}

// Amount is a monetary value in minor units. It marshals to JSON as a number
// with two decimals.
type Amount int64

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// String renders the amount in major units with two decimals.
func (a Amount) String() string {
	return decimal.New(int64(a), -2).StringFixed(2)
}

// fromDecimal rounds a major-unit decimal half away from zero to minor units.
func fromDecimal(d decimal.Decimal) Amount {
	return Amount(d.Shift(2).Round(0).IntPart())
}

// ParseAmount parses a strictly positive decimal string into minor units.
// Both "12.34" and "12,34" are accepted.
func ParseAmount(s string) (int64, error) {
	d, err := parse(s)
	if err != nil {
		return 0, err
	}
	cents := int64(fromDecimal(d))
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// ParseLimit parses a non-negative decimal string into minor units.
func ParseLimit(s string) (int64, error) {
	d, err := parse(s)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, ErrNegative
	}
	return int64(fromDecimal(d)), nil
}

func parse(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// Ratio divides num by den (both minor units) and returns the rounded result in
// minor units. A zero denominator yields zero.
func Ratio(num int64, den int64) Amount {
	if den == 0 {
		return 0
	}
	return Amount(decimal.NewFromInt(num).Div(decimal.NewFromInt(den)).Round(0).IntPart())
}

// Percent returns part/whole*100 rounded to two decimals. A zero whole yields zero.
func Percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(whole)).
		Round(2).
		InexactFloat64()
}

// Format renders an amount with its currency symbol and separators, e.g. "$1,250.00".
func Format(a Amount, currency string) string {
	return gomoney.New(int64(a), NormalizeCurrency(currency)).Display()
}
