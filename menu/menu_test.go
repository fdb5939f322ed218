package menu

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTree(t *testing.T) {
	m := Default()
	assert.Equal(t, "Choose your action:", m.Title)
	require.Len(t, m.Items, 10)

	exit, ok := m.Find(0)
	require.True(t, ok)
	assert.Equal(t, "exit", exit.Key)

	analyze, ok := m.Find(7)
	require.True(t, ok)
	assert.Equal(t, "sort", analyze.Key)
	require.NotNil(t, analyze.Sub)
	assert.Equal(t, "How do you want to sort?", analyze.Sub.Title)

	certain, ok := analyze.Sub.Find(3)
	require.True(t, ok)
	require.NotNil(t, certain.Sub)
	for _, it := range certain.Sub.Items {
		assert.True(t, it.PopAfter)
	}
}

func TestFindUnregisteredOption(t *testing.T) {
	m := Default()
	_, ok := m.Find(42)
	assert.False(t, ok)
}

func TestLoadMenuConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	cfg := `{
		"title": "Choose your action:",
		"items": [
			{"option": 1, "label": "Balance", "key": "balance"},
			{"option": 0, "label": "Exit", "key": "exit"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Choose your action:", m.Title)
	require.Len(t, m.Items, 2)
	assert.Equal(t, "balance", m.Items[0].Key)
}

func TestLoadMenuConfigMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReadChoice(t *testing.T) {
	SetInput(strings.NewReader("5\n"))
	n, err := readChoice()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestReadChoiceNonNumeric(t *testing.T) {
	SetInput(strings.NewReader("abc\n"))
	_, err := readChoice()
	assert.Error(t, err)
}

func TestReadAmount(t *testing.T) {
	SetInput(strings.NewReader("23,50\n"))
	amt, err := readAmount("")
	require.NoError(t, err)
	assert.True(t, amt.Equal(decimal.RequireFromString("23.5")))
}

func TestReadAmountMalformedFailsFast(t *testing.T) {
	SetInput(strings.NewReader("a lot\n"))
	_, err := readAmount("")
	assert.Error(t, err)
}

func TestWithTimingLogsKeyAndStatus(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	cmd := WithTiming(log, Command{
		Key:  "balance",
		Name: "Balance",
		Run:  func(context.Context) error { return nil },
	})
	require.NoError(t, cmd.Run(context.Background()))
	assert.Contains(t, buf.String(), "key=balance")
	assert.Contains(t, buf.String(), "status=OK")

	buf.Reset()
	cmd = WithTiming(log, Command{
		Key:  "load",
		Name: "Load",
		Run:  func(context.Context) error { return errors.New("boom") },
	})
	assert.Error(t, cmd.Run(context.Background()))
	assert.Contains(t, buf.String(), "status=ERR")
}
