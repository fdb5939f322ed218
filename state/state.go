// Package state remembers small bits of session setup between runs.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const fileName = ".state.json"

type appState struct {
	LedgerPath string `json:"ledger_path"`
}

func path() string {
	wd, _ := os.Getwd()
	return filepath.Join(wd, fileName)
}

func LoadLedgerPath() (string, error) {
	b, err := os.ReadFile(path())
	if err != nil {
		return "", err
	}
	var s appState
	if err := json.Unmarshal(b, &s); err != nil {
		return "", err
	}
	return s.LedgerPath, nil
}

func SaveLedgerPath(p string) error {
	b, err := json.MarshalIndent(appState{LedgerPath: p}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path(), b, 0644)
}
