package domain

import (
	"github.com/shopspring/decimal"
)

// Balance is the single running account total for the session. Income adds
// to it, purchase cost subtracts from it; there is no floor at zero.
type Balance struct {
	value decimal.Decimal
}

func NewBalance() *Balance {
	return &Balance{value: decimal.Zero}
}

func (b *Balance) Add(v decimal.Decimal)      { b.value = b.value.Add(v) }
func (b *Balance) Subtract(v decimal.Decimal) { b.value = b.value.Sub(v) }

// Set overwrites the balance unconditionally. Used only by load.
func (b *Balance) Set(v decimal.Decimal) { b.value = v }

func (b *Balance) Amount() decimal.Decimal { return b.value }

// String is the display form, always 2 decimals.
func (b *Balance) String() string {
	return "Balance: $" + b.value.StringFixed(2)
}
