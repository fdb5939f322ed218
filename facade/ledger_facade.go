// Package facade holds the use-case layer the menu actions call into.
package facade

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"budget/domain"
	"budget/ledger"
)

// LedgerFacade owns the session state as siblings: the balance is never
// referenced from inside the ledger, the purchase flow debits it explicitly.
type LedgerFacade struct {
	F       domain.Factory
	Balance *domain.Balance
	Ledger  *ledger.Ledger
}

func (f LedgerFacade) AddIncome(amount decimal.Decimal) {
	f.Balance.Add(amount)
}

// AddPurchase is the interactive flow: debit the balance, then append.
func (f LedgerFacade) AddPurchase(name string, price decimal.Decimal, cat domain.Category) (domain.Purchase, error) {
	p, err := f.F.NewPurchase(name, price, cat)
	if err != nil {
		return domain.Purchase{}, err
	}
	f.Balance.Subtract(p.Price)
	f.Ledger.Add(p)
	return p, nil
}

// Record appends a purchase without touching the balance. Used when
// reconstructing from persisted or imported data.
func (f LedgerFacade) Record(cat domain.Category, name string, price decimal.Decimal) (domain.Purchase, error) {
	p, err := f.F.NewPurchase(name, price, cat)
	if err != nil {
		return domain.Purchase{}, err
	}
	f.Ledger.Add(p)
	return p, nil
}

// ShowByCategory prints the listing for one category, or the empty-list
// message when the category has no purchases.
func (f LedgerFacade) ShowByCategory(w io.Writer, cat domain.Category) {
	if f.Ledger.CountBy(cat) == 0 {
		fmt.Fprintln(w, "The purchase list is empty")
		return
	}
	fmt.Fprintf(w, "%s:\n", cat.Label())
	for _, p := range f.Ledger.Purchases() {
		if p.Category == cat {
			fmt.Fprintln(w, p.Display())
		}
	}
	fmt.Fprintln(w, "Total sum: $"+printPrice(f.Ledger.TotalBy(cat)))
}

// ShowAll prints every purchase, or the empty-list message. Note the
// trailing bang: the all-purchases empty message differs from the
// per-category one.
func (f LedgerFacade) ShowAll(w io.Writer) {
	if f.Ledger.Len() == 0 {
		fmt.Fprintln(w, "The purchase list is empty!")
		return
	}
	fmt.Fprintln(w, "All:")
	for _, p := range f.Ledger.Purchases() {
		fmt.Fprintln(w, p.Display())
	}
	fmt.Fprintln(w, "Total: $"+printPrice(f.Ledger.Total()))
}

// printPrice emits "0" for an exactly-zero total and the natural decimal
// string otherwise. Totals are deliberately not padded to 2 decimals, unlike
// the balance display.
func printPrice(v decimal.Decimal) string {
	if v.IsZero() {
		return "0"
	}
	return v.String()
}
