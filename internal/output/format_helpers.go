package output

import (
	"strconv"

	money "github.com/rxcalc/pharmacy-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as Turkish lira with 2 decimals ("1.234,57 ₺").
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a Turkish percentage with 1 decimal ("%12,1").
func FormatPercentage(amount decimal.Decimal) string { return "%" + money.FormatTR(amount, 1) }

// FormatSigned prefixes non-negative amounts with "+".
func FormatSigned(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return FormatCurrency(amount)
	}
	return "+" + FormatCurrency(amount)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func floatToString(f float64, prec int) string { return strconv.FormatFloat(f, 'f', prec, 64) }
