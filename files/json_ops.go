package files

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"budget/domain"
)

type JSONEncoder struct{}

func (JSONEncoder) EncodeRows(rows []Row) ([]byte, error) {
	return json.MarshalIndent(rows, "", "  ")
}

func ExportPurchasesJSON(purchases []domain.Purchase, path string) error {
	return ExportPurchases(purchases, path, JSONEncoder{})
}

type JSONImporter struct{}

func (JSONImporter) parse(data []byte) ([]Row, error) {
	var in []Row
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	out := make([]Row, 0, len(in))
	for _, r := range in {
		if _, err := decimal.NewFromString(r.Price); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func ImportPurchasesJSON(path string) ([]Row, error) {
	return BaseImporter{parser: JSONImporter{}}.Import(path)
}
