package files

import (
	"os"

	"budget/domain"
)

// Encoder is the strategy for one export format.
type Encoder interface {
	EncodeRows(rows []Row) ([]byte, error)
}

// ExportPurchases writes the given purchases to path in the encoder's
// format.
func ExportPurchases(purchases []domain.Purchase, path string, enc Encoder) error {
	rows := make([]Row, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, Row{
			ID:       string(p.ID),
			Category: p.Category.Label(),
			Name:     p.Name,
			Price:    p.Price.StringFixed(2),
		})
	}
	b, err := enc.EncodeRows(rows)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
