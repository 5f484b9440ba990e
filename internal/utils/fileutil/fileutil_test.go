package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dpdkintel.pid")

	require.NoError(t, AtomicWriteFile(path, []byte("42"), 0600))
	require.NoError(t, AtomicWriteFile(path, []byte("43"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "43", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file left behind")
}

func TestAtomicWriteFileMissingDir(t *testing.T) {
	err := AtomicWriteFile(filepath.Join(t.TempDir(), "missing", "f"), []byte("x"), 0644)
	assert.Error(t, err)
}

func TestWriteFileIfAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etc", "dpdkintel", "dpdkintel.yaml")

	written, err := WriteFileIfAbsent(path, []byte("a: 1\n"), 0644)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = WriteFileIfAbsent(path, []byte("a: 2\n"), 0644)
	require.NoError(t, err)
	assert.False(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(data))
}
