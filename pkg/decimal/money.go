package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a Turkish lira amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to kuruş, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// PerUnit spreads the amount over a number of units. Zero units yield zero.
func (m Money) PerUnit(units decimal.Decimal) Money {
	if units.IsZero() {
		return Zero()
	}
	return Money{m.Decimal.Div(units)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with two fraction digits
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount the way Turkish pharmacies print prices:
// dot thousands separator, comma decimal separator, trailing lira sign.
func (m Money) Format() string {
	return FormatTR(m.Round().Decimal, 2) + " ₺"
}

// FormatTR formats d with the given number of fraction digits using
// Turkish separators ("1.234,56").
func FormatTR(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}
