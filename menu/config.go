package menu

import (
	"encoding/json"
	"os"
)

// Load reads a menu tree from a JSON file.
func Load(path string) (Menu, error) {
	f, err := os.Open(path)
	if err != nil {
		return Menu{}, err
	}
	defer f.Close()

	var m Menu
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return Menu{}, err
	}
	return m, nil
}
