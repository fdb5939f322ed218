package files

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"budget/domain"
)

// EncodeLedger builds the persisted text form: the balance on the first
// line, then one category;name;price line per purchase in ledger order.
func EncodeLedger(balance decimal.Decimal, purchases []domain.Purchase) string {
	var b strings.Builder
	b.WriteString(balance.String())
	b.WriteByte('\n')
	for _, p := range purchases {
		b.WriteString(p.Line())
		b.WriteByte('\n')
	}
	return b.String()
}

// DecodeLedger parses the persisted form back. Lines that do not have
// exactly three fields are silently skipped; an unknown category label or an
// unparsable price aborts the decode with the error.
func DecodeLedger(f domain.Factory, lines []string) (decimal.Decimal, []domain.Purchase, error) {
	if len(lines) == 0 {
		return decimal.Zero, nil, nil
	}
	balance, err := decimal.NewFromString(strings.TrimSpace(lines[0]))
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("parse balance: %w", err)
	}

	var purchases []domain.Purchase
	for _, line := range lines[1:] {
		parts := strings.Split(line, ";")
		if len(parts) != 3 {
			continue
		}
		cat, err := domain.ParseCategory(parts[0])
		if err != nil {
			return decimal.Zero, nil, err
		}
		price, err := decimal.NewFromString(parts[2])
		if err != nil {
			return decimal.Zero, nil, fmt.Errorf("parse price %q: %w", parts[2], err)
		}
		p, err := f.NewPurchase(parts[1], price, cat)
		if err != nil {
			return decimal.Zero, nil, err
		}
		purchases = append(purchases, p)
	}
	return balance, purchases, nil
}
