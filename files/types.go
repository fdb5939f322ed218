package files

// Row is the universal purchase record for export/import.
type Row struct {
	ID       string `json:"id"       yaml:"id"`
	Category string `json:"category" yaml:"category"` // display label
	Name     string `json:"name"     yaml:"name"`
	Price    string `json:"price"    yaml:"price"` // "123.45"
}
