package output

import (
	"strconv"

	"github.com/hacktx/financial-navigator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD with thousands separators and cents.
func FormatCurrency(amount decimal.Decimal) string { return money.Currency(amount) }

// FormatPercentage formats a value already in percent with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return money.Percent(amount, 2) }

// FormatScore renders a 0-100 sub-score with one decimal.
func FormatScore(score decimal.Decimal) string { return score.StringFixed(1) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
