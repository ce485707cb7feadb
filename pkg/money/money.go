// Package money formats currency and percentage amounts for display.
package money

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a US dollar amount
type Money struct {
	decimal.Decimal
}

// New wraps a decimal amount
func New(d decimal.Decimal) Money {
	return Money{d}
}

// FromInt creates a whole-dollar amount
func FromInt(dollars int64) Money {
	return Money{decimal.NewFromInt(dollars)}
}

// Parse creates a Money instance from a string such as "1234.50"
func Parse(value string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimPrefix(strings.ReplaceAll(value, ",", ""), "$"))
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Cents rounds to the nearest cent
func (m Money) Cents() Money {
	return Money{m.Decimal.Round(2)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// String returns the amount with two decimals and no symbol
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as $1,234.56
func (m Money) Format() string {
	return format(m.Decimal, 2)
}

// FormatWhole renders the amount rounded to whole dollars, e.g. $28,000
func (m Money) FormatWhole() string {
	return format(m.Decimal, 0)
}

// Currency is shorthand for New(d).Format()
func Currency(d decimal.Decimal) string {
	return format(d, 2)
}

// WholeCurrency is shorthand for New(d).FormatWhole()
func WholeCurrency(d decimal.Decimal) string {
	return format(d, 0)
}

// Percent renders a value already expressed in percent, e.g. 6.5 -> "6.50%"
func Percent(d decimal.Decimal, places int32) string {
	return d.StringFixed(places) + "%"
}

// Ratio renders a fraction as a percentage, e.g. 0.48 -> "48.0%"
func Ratio(d decimal.Decimal, places int32) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}

func format(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	digits, _ := new(big.Int).SetString(whole, 10)
	out := sign + "$" + humanize.BigComma(digits)
	if hasFrac {
		out += "." + frac
	}
	return out
}
