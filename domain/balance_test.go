package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBalanceAddSubtract(t *testing.T) {
	b := NewBalance()
	b.Add(decimal.RequireFromString("100"))
	b.Subtract(decimal.RequireFromString("30.25"))
	assert.True(t, b.Amount().Equal(decimal.RequireFromString("69.75")))
}

func TestBalanceCanGoNegative(t *testing.T) {
	b := NewBalance()
	b.Subtract(decimal.RequireFromString("5"))
	assert.True(t, b.Amount().IsNegative())
	assert.Equal(t, "Balance: $-5.00", b.String())
}

func TestBalanceSetOverwrites(t *testing.T) {
	b := NewBalance()
	b.Add(decimal.NewFromInt(42))
	b.Set(decimal.NewFromInt(100))
	assert.True(t, b.Amount().Equal(decimal.NewFromInt(100)))
}

func TestBalanceStringTwoDecimals(t *testing.T) {
	b := NewBalance()
	assert.Equal(t, "Balance: $0.00", b.String())
	b.Add(decimal.RequireFromString("23.5"))
	assert.Equal(t, "Balance: $23.50", b.String())
}
