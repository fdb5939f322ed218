package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"budget/domain"
	"budget/ledger"
)

type AnalyticsService struct {
	led *ledger.Ledger
}

func NewAnalyticsService(led *ledger.Ledger) *AnalyticsService {
	return &AnalyticsService{led: led}
}

// CategorySummary is one row of the by-type breakdown.
type CategorySummary struct {
	Category domain.Category
	Total    decimal.Decimal
}

// ByCategory sums purchases per category. Every fixed category appears even
// when its sum is zero. Rows are sorted descending by total; equal totals
// keep category declaration order (stable sort over Categories()).
func (s *AnalyticsService) ByCategory() []CategorySummary {
	rows := make([]CategorySummary, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		rows = append(rows, CategorySummary{Category: c, Total: s.led.TotalBy(c)})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows
}

func (s *AnalyticsService) GrandTotal() decimal.Decimal {
	return s.led.Total()
}
