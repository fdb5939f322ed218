package facade

import (
	"fmt"
	"io"

	"budget/service"
)

type AnalyticsFacade struct {
	Svc *service.AnalyticsService
}

// ShowTypeSummary prints the by-type breakdown: one row per category,
// zeros included, largest total first, then the grand total.
func (a AnalyticsFacade) ShowTypeSummary(w io.Writer) {
	fmt.Fprintln(w, "Types:")
	for _, row := range a.Svc.ByCategory() {
		fmt.Fprintf(w, "%s - $%s\n", row.Category.Label(), printPrice(row.Total))
	}
	fmt.Fprintln(w, "Total sum: $"+printPrice(a.Svc.GrandTotal()))
}
