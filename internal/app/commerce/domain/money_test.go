package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewMoney_FormatsMinorUnits(t *testing.T) {
	m := NewMoney(5999, "USD")
	assert.Equal(t, int64(5999), m.MinorUnits)
	assert.Equal(t, "USD", m.CurrencyCode)
	assert.Equal(t, "59.99", m.Amount.StringFixed(2))
	assert.InDelta(t, 59.99, m.Float(), 1e-9)
}

func TestNewMoney_DefaultsCurrency(t *testing.T) {
	assert.Equal(t, "USD", NewMoney(100, "").CurrencyCode)
	assert.Equal(t, "EUR", NewMoney(100, " eur ").CurrencyCode)
}

func TestMoneyFromAmount_RoundTrip(t *testing.T) {
	m := MoneyFromAmount(decimal.RequireFromString("59.99"), "USD")
	assert.Equal(t, int64(5999), m.MinorUnits)

	back := MoneyFromAmount(NewMoney(5999, "USD").Amount, "USD")
	assert.Equal(t, int64(5999), back.MinorUnits)
}

func TestMoneyFromAmount_RoundsToNearestMinorUnit(t *testing.T) {
	assert.Equal(t, int64(1000), MoneyFromAmount(decimal.RequireFromString("9.995"), "USD").MinorUnits)
	assert.Equal(t, int64(999), MoneyFromAmount(decimal.RequireFromString("9.994"), "USD").MinorUnits)
}

func TestMoney_Times(t *testing.T) {
	assert.Equal(t, int64(11998), NewMoney(5999, "USD").Times(2).MinorUnits)
}

func TestMoney_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("amount round-trips to minor units", prop.ForAll(
		func(minor int64) bool {
			m := NewMoney(minor, "USD")
			return MoneyFromAmount(m.Amount, m.CurrencyCode).MinorUnits == minor
		},
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
	))

	properties.Property("amount equals minor units over 100", prop.ForAll(
		func(minor int64) bool {
			m := NewMoney(minor, "USD")
			return m.Amount.Mul(decimal.NewFromInt(100)).Equal(decimal.NewFromInt(minor))
		},
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
	))

	properties.TestingRun(t)
}
