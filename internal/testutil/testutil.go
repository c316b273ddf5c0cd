// Package testutil provides shared test helpers for setting up source
// directories, notebooks, and ledgers.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/veldrin/notable2zim/internal/checksum"
	"github.com/veldrin/notable2zim/internal/ledger"
	"github.com/veldrin/notable2zim/internal/storage"
)

// TestLedger creates a temporary SQLite ledger that is automatically
// cleaned up.
func TestLedger(t *testing.T) *ledger.DB {
	t.Helper()
	dbFile := filepath.Join(t.TempDir(), "n2z-test.db")
	db, err := ledger.Open(dbFile)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestNotebook creates a temporary notebook directory with a
// storage.Provider.
func TestNotebook(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// WriteNote writes a source note file and returns its path.
func WriteNote(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

// TreeDigest returns a digest over every regular file under root
// (relative path + content), for byte-for-byte tree comparisons.
func TreeDigest(t *testing.T, root string) string {
	t.Helper()
	var lines []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		lines = append(lines, rel+":"+checksum.Sum(data))
		return nil
	})
	if err != nil {
		t.Fatalf("tree digest: %v", err)
	}
	sort.Strings(lines)
	return checksum.Sum([]byte(strings.Join(lines, "\n")))
}
