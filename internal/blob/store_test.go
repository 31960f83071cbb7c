package blob

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgerrors "github.com/gameshop/catalog-api/pkg/errors"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return store
}

func TestSaveWritesFileAndReturnsURL(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save([]byte("png-bytes"), "cover.png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if !strings.HasPrefix(url, "/images/products/") {
		t.Fatalf("unexpected url prefix: %q", url)
	}
	if !strings.HasSuffix(url, "_cover.png") {
		t.Fatalf("expected original filename suffix, got %q", url)
	}

	onDisk := filepath.Join(store.Root(), filepath.FromSlash(strings.TrimPrefix(url, "/")))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("stored bytes mismatch: %q", data)
	}
}

func TestSaveGeneratesUniqueNamesForSameFilename(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save([]byte("one"), "shot.jpg")
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := store.Save([]byte("two"), "shot.jpg")
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct urls, both were %q", first)
	}
}

func TestSaveStripsPathComponents(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save([]byte("data"), "../../etc/passwd")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if strings.Contains(url, "..") {
		t.Fatalf("url leaked path traversal: %q", url)
	}
	if !strings.HasSuffix(url, "_passwd") {
		t.Fatalf("expected base filename suffix, got %q", url)
	}
}

func TestSaveRejectsEmptyData(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(nil, "empty.png")
	if err == nil {
		t.Fatal("expected error for empty data")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteRemovesFile(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save([]byte("bytes"), "gone.png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := store.Delete(url); err != nil {
		t.Fatalf("delete: %v", err)
	}

	onDisk := filepath.Join(store.Root(), filepath.FromSlash(strings.TrimPrefix(url, "/")))
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err=%v", err)
	}
}

func TestDeleteMissingFileSucceeds(t *testing.T) {
	store := newTestStore(t)

	if err := store.Delete("/images/products/nope_missing.png"); err != nil {
		t.Fatalf("expected missing file to be a no-op, got %v", err)
	}
}

func TestDeleteRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	err := store.Delete("/images/products/../../secret")
	if err == nil {
		t.Fatal("expected error for traversal path")
	}
}

func TestNewFileStoreRequiresRoot(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Fatal("expected error for empty root")
	}
}
