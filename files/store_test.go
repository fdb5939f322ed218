package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purchases.txt")

	st, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, st.Path())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestNewStoreKeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purchases.txt")
	require.NoError(t, os.WriteFile(path, []byte("100\n"), 0644))

	st, err := NewStore(path)
	require.NoError(t, err)

	lines, err := st.LoadLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"100"}, lines)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purchases.txt")
	st, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, st.Save("first\nsecond\n"))
	require.NoError(t, st.Save("only\n"))

	lines, err := st.LoadLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, lines)
}

func TestSaveFailsOnUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purchases.txt")
	st, err := NewStore(path)
	require.NoError(t, err)

	// A directory at the ledger path makes the write fail.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0755))

	assert.Error(t, st.Save("100\n"))
}

func TestLoadLinesPropagatesReadError(t *testing.T) {
	st := &Store{path: filepath.Join(t.TempDir(), "missing.txt")}
	_, err := st.LoadLines()
	assert.Error(t, err)
}
