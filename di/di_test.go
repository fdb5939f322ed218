package di

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWiresTheSession(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	app, err := Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Choose your action:", app.Menu.Title)
	assert.NotNil(t, app.Deps.Balance)
	assert.NotNil(t, app.Deps.Ledger)
	assert.NotNil(t, app.Deps.Store)
	assert.NotNil(t, app.Deps.Log)
	assert.Equal(t, app.Deps.Balance, app.Deps.Led.Balance)
	assert.Equal(t, app.Deps.Ledger, app.Deps.Led.Ledger)

	// The ledger file is created on construction.
	_, err = os.Stat("purchases.txt")
	assert.NoError(t, err)
}

func TestLedgerPathEnvOverride(t *testing.T) {
	t.Setenv("LEDGER_FILE", "custom.txt")
	assert.Equal(t, "custom.txt", ledgerPath())
}
