package cas_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/justrun/internal/adapters/cas"
	"go.trai.ch/justrun/internal/core/domain"
)

const sampleDigest = domain.Digest("2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824")

func TestStore_SaveAndLoad(t *testing.T) {
	cwd := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Save(cwd, sampleDigest))

	got, ok, err := store.Load(cwd)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sampleDigest, got)
}

func TestStore_RecordFormat(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, cas.NewStore().Save(cwd, sampleDigest))

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(filepath.Join(cwd, ".run-tool-cache"))
	require.NoError(t, err)
	assert.Equal(t, sampleDigest.String(), string(content))

	info, err := os.Stat(filepath.Join(cwd, ".run-tool-cache"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())
}

func TestStore_SaveOverwrites(t *testing.T) {
	cwd := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Save(cwd, "aaaa"))
	require.NoError(t, store.Save(cwd, sampleDigest))

	got, ok, err := store.Load(cwd)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sampleDigest, got)

	// No temporary files are left behind.
	entries, err := os.ReadDir(cwd)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.CacheFileName, entries[0].Name())
}

func TestStore_Load_Absent(t *testing.T) {
	got, ok, err := cas.NewStore().Load(t.TempDir())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, got.IsZero())
}

func TestStore_Load_Empty(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, domain.CacheFileName), nil, 0o600))

	_, ok, err := cas.NewStore().Load(cwd)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Load_Malformed(t *testing.T) {
	for _, content := range []string{"not a digest", "ABCDEF", sampleDigest.String()[:40], strings.ToUpper(sampleDigest.String())} {
		cwd := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(cwd, domain.CacheFileName), []byte(content), 0o600))

		got, ok, err := cas.NewStore().Load(cwd)
		require.NoError(t, err, content)
		assert.False(t, ok, content)
		assert.True(t, got.IsZero(), content)
	}
}

func TestStore_Load_TrimsNewline(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, domain.CacheFileName), []byte(sampleDigest+"\n"), 0o600))

	got, ok, err := cas.NewStore().Load(cwd)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sampleDigest, got)
}

func TestStore_Load_ReadError(t *testing.T) {
	cwd := t.TempDir()
	// A directory in place of the record cannot be read as a file.
	require.NoError(t, os.Mkdir(filepath.Join(cwd, domain.CacheFileName), 0o750))

	_, _, err := cas.NewStore().Load(cwd)
	require.ErrorIs(t, err, domain.ErrIO)
}

func TestStore_Save_MissingDirectory(t *testing.T) {
	err := cas.NewStore().Save(filepath.Join(t.TempDir(), "nope"), sampleDigest)
	require.ErrorIs(t, err, domain.ErrIO)
}

func TestStore_Remove(t *testing.T) {
	cwd := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Save(cwd, sampleDigest))
	require.NoError(t, store.Remove(cwd))

	_, ok, err := store.Load(cwd)
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing twice is fine.
	require.NoError(t, store.Remove(cwd))
}

func TestStore_CustomName(t *testing.T) {
	cwd := t.TempDir()
	store := cas.NewStoreWithName(".custom")

	require.NoError(t, store.Save(cwd, sampleDigest))

	_, err := os.Stat(filepath.Join(cwd, ".custom"))
	require.NoError(t, err)
}
