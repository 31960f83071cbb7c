package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/gameshop/catalog-api/pkg/errors"
)

// productImagesPrefix is the public URL prefix under which stored images are served.
const productImagesPrefix = "/images/products"

// Store persists uploaded image bytes and resolves their public URLs.
type Store interface {
	Save(data []byte, originalName string) (string, error)
	Delete(imageURL string) error
}

// FileStore writes images beneath a root directory on the local filesystem.
// URLs it returns are root-relative so they survive a change of root.
type FileStore struct {
	root string
}

// NewFileStore builds a filesystem store rooted at the given directory.
func NewFileStore(root string) (*FileStore, error) {
	if root == "" {
		return nil, fmt.Errorf("blob root is required")
	}
	return &FileStore{root: root}, nil
}

// Save writes the bytes under a collision-proof name and returns the public URL.
// The original filename is kept as a readable suffix; any path components a
// client smuggles in are stripped.
func (s *FileStore) Save(data []byte, originalName string) (string, error) {
	if len(data) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "empty file")
	}

	base := filepath.Base(strings.TrimSpace(originalName))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "upload"
	}

	filename := fmt.Sprintf("%s_%s", uuid.NewString(), base)
	dir := filepath.Join(s.root, "images", "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "blob: create images directory")
	}

	fullpath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullpath, data, 0o644); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "blob: write image file")
	}

	return productImagesPrefix + "/" + filename, nil
}

// Delete removes the file backing the given public URL. A file that is already
// gone counts as deleted; the database row is the source of truth.
func (s *FileStore) Delete(imageURL string) error {
	rel := strings.TrimPrefix(imageURL, "/")
	rel = filepath.FromSlash(rel)

	// refuse anything that would escape the root
	if strings.Contains(rel, "..") {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid image path")
	}

	fullpath := filepath.Join(s.root, rel)
	if err := os.Remove(fullpath); err != nil && !os.IsNotExist(err) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "blob: remove image file")
	}
	return nil
}

// Root returns the directory the store writes beneath.
func (s *FileStore) Root() string {
	return s.root
}
