package files

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"budget/domain"
)

type YAMLEncoder struct{}

func (YAMLEncoder) EncodeRows(rows []Row) ([]byte, error) {
	return yaml.Marshal(rows)
}

func ExportPurchasesYAML(purchases []domain.Purchase, path string) error {
	return ExportPurchases(purchases, path, YAMLEncoder{})
}

type YAMLImporter struct{}

func (YAMLImporter) parse(data []byte) ([]Row, error) {
	var in []Row
	if err := yaml.Unmarshal(data, &in); err != nil {
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

func ImportPurchasesYAML(path string) ([]Row, error) {
	return BaseImporter{parser: YAMLImporter{}}.Import(path)
}
