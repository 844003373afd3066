package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the number of decimal places every finalized monetary
// value carries.
const moneyPlaces = 2

// RoundMoney rounds an amount to 2 decimal places, half up.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(moneyPlaces)
}

// FormatMoney renders an amount as a Naira string with thousands
// separators, e.g. ₦1,234,567.89.
func FormatMoney(amount decimal.Decimal) string {
	return "₦" + FormatAmount(amount)
}

// FormatAmount renders an amount with thousands separators and exactly two
// decimal places, without a currency symbol. PDF output uses this with an
// explicit "NGN" code since the core PDF fonts have no ₦ glyph.
func FormatAmount(amount decimal.Decimal) string {
	s := amount.StringFixed(moneyPlaces)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
