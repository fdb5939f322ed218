package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyPurchaseID   = errors.New("purchase id is empty")
	ErrEmptyPurchaseName = errors.New("purchase name is empty")
	ErrNegativePrice     = errors.New("purchase price must be >= 0")
	ErrInvalidCategory   = errors.New("invalid category")
)

// Purchase is an immutable record of a single bought item. Created only via
// Factory.NewPurchase; never mutated or deleted afterwards.
type Purchase struct {
	ID       PurchaseID      `json:"id"       yaml:"id"`
	Name     string          `json:"name"     yaml:"name"`
	Price    decimal.Decimal `json:"price"    yaml:"price"`
	Category Category        `json:"category" yaml:"category"`
}

func (p Purchase) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return ErrEmptyPurchaseID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyPurchaseName
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if !p.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// Line is the persisted form: category_label;name;price, price as its
// natural decimal string (not padded to 2 decimals).
func (p Purchase) Line() string {
	return p.Category.Label() + ";" + p.Name + ";" + p.Price.String()
}

// Display is the console form: "name $price" with the price at 2 decimals.
func (p Purchase) Display() string {
	return p.Name + " $" + p.Price.StringFixed(2)
}
