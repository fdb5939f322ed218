package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Factory struct{}

func (Factory) NewPurchase(name string, price decimal.Decimal, cat Category) (Purchase, error) {
	p := Purchase{
		ID:       PurchaseID(uuid.NewString()),
		Name:     strings.TrimSpace(name),
		Price:    price,
		Category: cat,
	}
	return p, p.Validate()
}
