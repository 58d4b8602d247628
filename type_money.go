package thrifthunter

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money couples an exact decimal amount with a currency for display.
//
// All ledger arithmetic stays on decimal.Decimal; Money only exists at the
// presentation boundary where a region's currency matters.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from an exact decimal value and an ISO currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted for the currency, e.g. "$19.15".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string     { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
