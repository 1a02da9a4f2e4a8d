package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestListDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.pdf"))
	touch(t, filepath.Join(dir, "a.pdf"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, ".hidden.pdf"))
	touch(t, filepath.Join(dir, "nested", "c.PDF"))

	paths, stats, err := ListDirectory(dir)
	require.NoError(t, err)

	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "a.pdf"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.pdf"), paths[1])
	assert.Equal(t, filepath.Join(dir, "nested", "c.PDF"), paths[2])
	assert.Equal(t, uint32(3), stats.Matched)
}

func TestListDirectorySkipsHiddenDirs(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, ".git", "d.pdf"))
	touch(t, filepath.Join(dir, "a.pdf"))

	paths, _, err := ListDirectory(dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "a.pdf"), paths[0])
}

func TestListDirectoryEmptyRoot(t *testing.T) {
	_, _, err := ListDirectory("   ")
	assert.Error(t, err)
}
