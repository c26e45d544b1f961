package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// documentsDir is the subdirectory of the media root holding uploaded files.
const documentsDir = "documents"

// LocalStorage stores uploaded document files on the local filesystem under
// a media root. Locators returned by Save are relative to the root and are
// what the documents table records.
type LocalStorage struct {
	root string
}

// NewLocalStorage creates the media root (and its documents directory) if
// needed and returns a store rooted there.
func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Join(root, documentsDir), 0o755); err != nil {
		return nil, fmt.Errorf("creating media root %s: %w", root, err)
	}
	return &LocalStorage{root: root}, nil
}

// Root returns the media root directory.
func (s *LocalStorage) Root() string {
	return s.root
}

// Save writes the payload to disk under a collision-free name and returns
// the locator to persist. The original file name is kept for readability;
// a uuid prefix prevents clashes between uploads of the same file.
func (s *LocalStorage) Save(fileName string, r io.Reader) (string, error) {
	name := sanitizeFileName(fileName)
	locator := filepath.ToSlash(filepath.Join(documentsDir, uuid.New().String()+"_"+name))

	dst, err := os.Create(filepath.Join(s.root, filepath.FromSlash(locator)))
	if err != nil {
		return "", fmt.Errorf("creating file for %s: %w", fileName, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("writing file for %s: %w", fileName, err)
	}
	return locator, nil
}

// Remove deletes the stored file for a locator. Missing files are not an
// error; the record is already gone and the cleanup is best-effort.
func (s *LocalStorage) Remove(locator string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(locator)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stored file %s: %w", locator, err)
	}
	return nil
}

// URL maps a stored locator to the public path it is served from.
func (s *LocalStorage) URL(locator string) string {
	return "/media/" + locator
}

// sanitizeFileName strips any path components and whitespace from an
// uploaded file name.
func sanitizeFileName(name string) string {
	name = filepath.Base(filepath.FromSlash(name))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	return name
}
