// Package ledger holds the in-memory ordered collection of purchases
// recorded during the session.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"budget/domain"
)

// Ledger keeps purchases in insertion order. Order only matters for display
// and for the in-place price sort; entries are never removed.
type Ledger struct {
	items []domain.Purchase
}

func New() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Add(p domain.Purchase) {
	l.items = append(l.items, p)
}

// Replace swaps the whole contents. Used by load, which replaces rather
// than merges.
func (l *Ledger) Replace(items []domain.Purchase) {
	l.items = append([]domain.Purchase(nil), items...)
}

func (l *Ledger) Len() int { return len(l.items) }

// Purchases returns a copy of the current sequence.
func (l *Ledger) Purchases() []domain.Purchase {
	return append([]domain.Purchase(nil), l.items...)
}

func (l *Ledger) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range l.items {
		sum = sum.Add(p.Price)
	}
	return sum
}

func (l *Ledger) TotalBy(cat domain.Category) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range l.items {
		if p.Category == cat {
			sum = sum.Add(p.Price)
		}
	}
	return sum
}

func (l *Ledger) CountBy(cat domain.Category) int {
	n := 0
	for _, p := range l.items {
		if p.Category == cat {
			n++
		}
	}
	return n
}

// SortByPriceDesc reorders the sequence in place by descending price.
// The sort is stable: equal prices keep their prior relative order.
func (l *Ledger) SortByPriceDesc() {
	sort.SliceStable(l.items, func(i, j int) bool {
		return l.items[i].Price.GreaterThan(l.items[j].Price)
	})
}
