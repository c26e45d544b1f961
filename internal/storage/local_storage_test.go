package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalStorageCreatesMediaRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "media")

	store, err := NewLocalStorage(root)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, documentsDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, root, store.Root())
}

func TestSaveWritesFileUnderDocuments(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	locator, err := store.Save("passport.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(locator, documentsDir+"/"), "locator %q should live under %s/", locator, documentsDir)
	assert.True(t, strings.HasSuffix(locator, "_passport.pdf"))

	data, err := os.ReadFile(filepath.Join(store.Root(), filepath.FromSlash(locator)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestSaveSameNameTwiceDoesNotCollide(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("scan.jpg", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Save("scan.jpg", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	data, err := os.ReadFile(filepath.Join(store.Root(), filepath.FromSlash(first)))
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))
}

func TestSaveSanitizesFileName(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	locator, err := store.Save("../../etc/birth certificate.png", strings.NewReader("png"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(locator, "_birth_certificate.png"), "got %q", locator)
	assert.NotContains(t, locator, "..")

	_, err = os.Stat(filepath.Join(store.Root(), filepath.FromSlash(locator)))
	assert.NoError(t, err, "file must stay inside the media root")
}

func TestRemove(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	locator, err := store.Save("notes.docx", strings.NewReader("doc"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(locator))
	_, err = os.Stat(filepath.Join(store.Root(), filepath.FromSlash(locator)))
	assert.True(t, os.IsNotExist(err))

	// Removing again is not an error; cleanup is best-effort.
	assert.NoError(t, store.Remove(locator))
}

func TestURL(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/media/documents/abc_scan.pdf", store.URL("documents/abc_scan.pdf"))
}
