package files

import (
	"bytes"
	"encoding/csv"

	"github.com/shopspring/decimal"

	"budget/domain"
)

var csvHeader = []string{"id", "category", "name", "price"}

type CSVEncoder struct{}

func (CSVEncoder) EncodeRows(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.ID, r.Category, r.Name, r.Price}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ExportPurchasesCSV(purchases []domain.Purchase, path string) error {
	return ExportPurchases(purchases, path, CSVEncoder{})
}

type CSVImporter struct{}

func (CSVImporter) parse(data []byte) ([]Row, error) {
	recs, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) <= 1 {
		return nil, nil // header only
	}
	out := make([]Row, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		if len(rec) < 4 {
			continue
		}
		if _, err := decimal.NewFromString(rec[3]); err != nil {
			continue
		}
		out = append(out, Row{ID: rec[0], Category: rec[1], Name: rec[2], Price: rec[3]})
	}
	return out, nil
}

func ImportPurchasesCSV(path string) ([]Row, error) {
	return BaseImporter{parser: CSVImporter{}}.Import(path)
}
