package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRelease(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s := NewStore(dir)

	f, err := s.Save(".docx", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(f.Path))
	assert.True(t, strings.HasSuffix(f.Path, ".docx"))

	data, err := f.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	require.NoError(t, f.Release())
	_, err = os.Stat(f.Path)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, f.Release())
}

func TestSaveUniqueNames(t *testing.T) {
	s := NewStore(t.TempDir())
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		f, err := s.Save(".pdf", []byte{byte(i)})
		require.NoError(t, err)
		_, dup := seen[f.Path]
		assert.False(t, dup)
		seen[f.Path] = struct{}{}
	}
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 50)
}

func TestSaveFailsWhenDirIsAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewStore(path).Save(".pdf", []byte("x"))
	assert.ErrorContains(t, err, "prepare upload dir")
}

func TestReadAllAfterRelease(t *testing.T) {
	f, err := NewStore(t.TempDir()).Save(".pdf", []byte("x"))
	require.NoError(t, err)
	require.NoError(t, f.Release())
	_, err = f.ReadAll()
	assert.Error(t, err)
}
