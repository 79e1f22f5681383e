package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrency is used when a money value carries no currency.
	DefaultCurrency = "USD"

	// FractionDigits is assumed for every currency the storefront handles.
	FractionDigits = 2
)

// Money is an immutable display money value.
// Invariant: Amount == MinorUnits / 10^FractionDigits.
type Money struct {
	MinorUnits   int64
	CurrencyCode string
	Amount       decimal.Decimal
}

// NewMoney builds a Money from minor units. An empty currency defaults to USD.
func NewMoney(minorUnits int64, currencyCode string) Money {
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))
	if currencyCode == "" {
		currencyCode = DefaultCurrency
	}
	return Money{
		MinorUnits:   minorUnits,
		CurrencyCode: currencyCode,
		Amount:       decimal.New(minorUnits, -FractionDigits),
	}
}

// MoneyFromAmount rebuilds a Money from a display amount, rounding half away
// from zero to the nearest minor unit.
func MoneyFromAmount(amount decimal.Decimal, currencyCode string) Money {
	minor := amount.Shift(FractionDigits).Round(0).IntPart()
	return NewMoney(minor, currencyCode)
}

// ZeroMoney is the zero value in the given currency (USD when empty).
func ZeroMoney(currencyCode string) Money {
	return NewMoney(0, currencyCode)
}

// Times multiplies by a quantity.
func (m Money) Times(quantity int) Money {
	return NewMoney(m.MinorUnits*int64(quantity), m.CurrencyCode)
}

// Float returns the amount as float64 for transports that need it.
func (m Money) Float() float64 {
	f, _ := m.Amount.Float64()
	return f
}

func (m Money) String() string {
	return m.Amount.StringFixed(FractionDigits) + " " + m.CurrencyCode
}
