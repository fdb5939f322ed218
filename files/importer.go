package files

import (
	"os"
)

// Template method for importers: read file, hand the bytes to the concrete
// parser, return the rows.
type parser interface {
	parse(data []byte) ([]Row, error)
}

type BaseImporter struct {
	parser parser
}

func (b BaseImporter) Import(path string) ([]Row, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return b.parser.parse(bin)
}
